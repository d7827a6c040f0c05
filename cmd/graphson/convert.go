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
	"io"
	"io/ioutil"

	"github.com/botobag/graphson/graphson"
	"github.com/botobag/graphson/gx"
	"github.com/botobag/graphson/iterator"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// options of a conversion. The YAML keys match the flag names.
type options struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Normalize bool   `yaml:"normalize"`
	NoTypes   bool   `yaml:"no-types"`
	GX        bool   `yaml:"gx"`
}

func defaultOptions() options {
	return options{
		From: graphson.LatestVersion.String(),
	}
}

// loadOptions reads options from a YAML file. Missing keys keep their defaults.
func loadOptions(path string) (options, error) {
	opts := defaultOptions()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return opts, errors.Wrapf(err, "cannot read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "cannot parse config file %s", path)
	}
	return opts, nil
}

// override replaces the options given by flags that were set on the command line.
func (opts options) override(flags options, flagSet *pflag.FlagSet) options {
	if flagSet.Changed("from") {
		opts.From = flags.From
	}
	if flagSet.Changed("to") {
		opts.To = flags.To
	}
	if flagSet.Changed("normalize") {
		opts.Normalize = flags.Normalize
	}
	if flagSet.Changed("no-types") {
		opts.NoTypes = flags.NoTypes
	}
	if flagSet.Changed("gx") {
		opts.GX = flags.GX
	}
	return opts
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		data, err := ioutil.ReadAll(stdin)
		return data, errors.Wrap(err, "cannot read standard input")
	}
	data, err := ioutil.ReadFile(args[0])
	return data, errors.Wrapf(err, "cannot read %s", args[0])
}

// mappers builds the mappers reading and writing documents.
func (opts options) mappers() (*graphson.Mapper, *graphson.Mapper, error) {
	from, err := graphson.ParseVersion(opts.From)
	if err != nil {
		return nil, nil, err
	}

	to := from
	if len(opts.To) > 0 {
		if to, err = graphson.ParseVersion(opts.To); err != nil {
			return nil, nil, err
		}
	}

	// Class hints are honored when reading V1.
	inputConfig := &graphson.Config{
		Version: from,
	}
	if from == graphson.V1 {
		inputConfig.Typing = graphson.PartialTypes
	}

	outputConfig := &graphson.Config{
		Version:   to,
		Normalize: opts.Normalize,
	}
	if opts.NoTypes {
		outputConfig.Typing = graphson.NoTypes
	}

	if opts.GX {
		inputConfig.Modules = []*graphson.Module{gx.Module(from)}
		outputConfig.Modules = []*graphson.Module{gx.Module(to)}
	}

	input, err := graphson.NewMapper(inputConfig)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid input options")
	}
	output, err := graphson.NewMapper(outputConfig)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid output options")
	}
	return input, output, nil
}

// convert decodes every document of data and writes it to w.
func convert(opts options, data []byte, w io.Writer) error {
	input, output, err := opts.mappers()
	if err != nil {
		return err
	}

	decoder := input.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	encoder := output.NewEncoder(w)
	for n := 1; ; n++ {
		v, err := decoder.Decode()
		if err == iterator.Done {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "document %d", n)
		}
		if err := encoder.Encode(v); err != nil {
			return errors.Wrapf(err, "document %d", n)
		}
	}
}
