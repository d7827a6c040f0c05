/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphson_test

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/botobag/graphson/graphson"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// Named types seen by a mapper for the first time while it is shared by many goroutines.
type (
	score   int32
	label   string
	ranking map[label]score
)

var _ = Describe("Mapper shared by goroutines", func() {
	const (
		numWorkers    = 16
		numIterations = 200
	)

	// run calls work from numWorkers goroutines at once and returns the first error of each.
	run := func(work func(worker, i int) error) []error {
		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			errs  = make([]error, numWorkers)
		)
		for worker := 0; worker < numWorkers; worker++ {
			wg.Add(1)
			go func(worker int) {
				defer GinkgoRecover()
				defer wg.Done()
				<-start
				for i := 0; i < numIterations; i++ {
					if err := work(worker, i); err != nil {
						errs[worker] = err
						return
					}
				}
			}(worker)
		}
		close(start)
		wg.Wait()
		return errs
	}

	It("writes and reads named types and pointers", func() {
		mapper := newMapper(nil)

		errs := run(func(worker, i int) error {
			n := score(worker*numIterations + i)

			var v interface{} = n
			switch i % 3 {
			case 1:
				v = &n
			case 2:
				v = ranking{label(fmt.Sprint("w", worker)): n}
			}

			data, err := mapper.Marshal(v)
			if err != nil {
				return err
			}

			expected := reflect.TypeOf(v)
			decoded, err := mapper.UnmarshalAs(data, expected)
			if err != nil {
				return err
			}

			if i%3 == 1 {
				decoded, v = *(decoded.(*score)), n
			}
			if !reflect.DeepEqual(decoded, v) {
				return fmt.Errorf("%s decoded to %#v; want %#v", data, decoded, v)
			}
			return nil
		})
		for _, err := range errs {
			Expect(err).ShouldNot(HaveOccurred())
		}
	})

	It("writes the same bytes from every goroutine", func() {
		mapper := newMapper(&graphson.Config{Version: graphson.V2})
		outputs := make([][]string, numWorkers)

		errs := run(func(worker, i int) error {
			n := score(i)
			data, err := mapper.Marshal([]interface{}{&n, label("x")})
			if err != nil {
				return err
			}
			outputs[worker] = append(outputs[worker], string(data))
			return nil
		})
		for _, err := range errs {
			Expect(err).ShouldNot(HaveOccurred())
		}

		for _, output := range outputs {
			Expect(output).Should(HaveLen(numIterations))
			for i, data := range output {
				Expect(data).Should(Equal(fmt.Sprintf(
					`{"@type":"g:List","@value":[{"@type":"g:Int32","@value":%d},"x"]}`, i)))
			}
		}
	})
})
