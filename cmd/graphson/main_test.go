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

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/botobag/graphson/graphson"
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("graphson command", func() {
	var (
		stdout *bytes.Buffer
		stderr *bytes.Buffer
		dir    string
	)

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}

		var err error
		dir, err = ioutil.TempDir("", "graphson")
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	writeFile := func(name string, content string) string {
		path := filepath.Join(dir, name)
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).Should(Succeed())
		return path
	}

	execute := func(input string, args ...string) error {
		return run(args, strings.NewReader(input), stdout, stderr)
	}

	lines := func() []string {
		return strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	}

	It("converts GraphSON 3.0 to 2.0", func() {
		Expect(execute(`{"@type":"g:Map","@value":["a",{"@type":"g:Int32","@value":1}]}`, "--to", "v2")).
			Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`{"@type":"g:Map","@value":{"a":{"@type":"g:Int32","@value":1}}}`))
	})

	It("converts every document of the input", func() {
		input := `
			// first
			{"@type": "g:Int32", "@value": 1}
			/* second */
			{"@type": "g:List", "@value": ["x",],}
		`
		Expect(execute(input, "--to", "v1")).Should(Succeed())
		Expect(lines()).Should(Equal([]string{`1`, `["x"]`}))
	})

	It("writes without types", func() {
		Expect(execute(`{"@type":"g:Int64","@value":5}`, "--to=v2", "--no-types")).Should(Succeed())
		Expect(lines()).Should(Equal([]string{`5`}))
	})

	It("sorts map entries", func() {
		Expect(execute(`{"b":1,"a":2}`, "--from", "v1", "--normalize")).Should(Succeed())
		Expect(lines()).Should(Equal([]string{`{"a":2,"b":1}`}))
	})

	It("reads class hints of GraphSON 1.0", func() {
		input := `{"@class":"g:Vertex","id":1,"label":"person","type":"vertex"}`
		Expect(execute(input, "--from", "v1", "--to", "v3")).Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`{
			"@type": "g:Vertex",
			"@value": {"id": {"@type": "g:Int64", "@value": 1}, "label": "person"}
		}`))
	})

	It("converts extended types", func() {
		input := `{"@type":"gx:BigDecimal","@value":"3.14"}`
		Expect(execute(input, "--gx", "--to", "v2")).Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`{"@type":"gx:BigDecimal","@value":3.14}`))

		stdout.Reset()
		Expect(execute(input, "--to", "v2")).Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`"3.14"`))
	})

	It("reads the input from a file", func() {
		path := writeFile("input.json", `{"@type":"g:Double","@value":1.5}`)
		Expect(execute("", path)).Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`{"@type":"g:Double","@value":1.5}`))
	})

	It("reads options from a config file", func() {
		config := writeFile("config.yaml", "from: v1\nto: v2\nno-types: true\n")
		Expect(execute(`{"a":1}`, "--config", config)).Should(Succeed())
		Expect(lines()).Should(Equal([]string{`{"a":1}`}))

		stdout.Reset()
		Expect(execute(`{"a":1}`, "--config", config, "--no-types=false")).Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`{"@type":"g:Map","@value":{"a":{"@type":"g:Int64","@value":1}}}`))
	})

	It("prints help", func() {
		Expect(execute("", "--help")).Should(Succeed())
		Expect(stderr.String()).Should(ContainSubstring("--no-types"))
		Expect(stdout.Len()).Should(BeZero())
	})

	It("fails on invalid options", func() {
		Expect(execute("", "--from", "v4")).Should(MatchError(ContainSubstring(`unknown GraphSON version "v4"`)))

		err := execute("1", "--to", "v3", "--no-types")
		Expect(err).Should(HaveOccurred())
		Expect(graphson.IsKind(errors.Cause(err), graphson.ErrKindVersionConstraint)).Should(BeTrue())
		Expect(err.Error()).Should(HavePrefix("invalid output options"))

		Expect(execute("", "a", "b")).Should(MatchError("unexpected argument: b"))
		Expect(execute("", "--config", filepath.Join(dir, "missing.yaml"))).Should(
			MatchError(ContainSubstring("cannot read config file")))
		Expect(execute("", filepath.Join(dir, "missing.json"))).Should(MatchError(ContainSubstring("cannot read")))
	})

	It("fails on malformed documents", func() {
		err := execute(`{"@type":"g:Int32","@value":1} {`)
		Expect(err).Should(MatchError(ContainSubstring("document 2")))
		Expect(lines()).Should(Equal([]string{`{"@type":"g:Int32","@value":1}`}))
	})
})
