// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"sigs.k8s.io/yaml"

	"code.hybscloud.com/shape"
	"code.hybscloud.com/shape/internal/cmdutil"
)

var hasInfo = cmdutil.NewInfo("has", "check a document against a type",
	`has <type> [file]

Decode a YAML or JSON document from file, or from stdin when no file is
given, and report whether it is a member of the type. The exit status is 1
when it is not.`)

type hasCmd struct {
	cmdutil.Info
	in io.Reader
}

// Execute implements subcommands.Command.
func (c *hasCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return c.UsageError("has takes a type name and an optional file")
	}
	t, err := cmdutil.Catalog(ctx).Lookup(fs.Arg(0))
	if err != nil {
		return c.Fail("%v", err)
	}
	v, err := c.decode(fs.Arg(1))
	if err != nil {
		return c.Fail("%v", err)
	}
	ok := t.Has(v)
	fmt.Fprintln(cmdutil.Output(ctx), ok)
	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *hasCmd) decode(path string) (any, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(c.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return v, nil
}

var supersedesInfo = cmdutil.NewInfo("supersedes", "check whether one type subsumes another",
	`supersedes [-trace] <sup> <sub>

Report whether sup structurally subsumes sub. With -trace, also print the
derivation, one (sup, sub) pair per line.`)

type supersedesCmd struct {
	cmdutil.Info
	trace bool
}

// SetFlags implements part of subcommands.Command.
func (c *supersedesCmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.trace, "trace", false, "Print the derivation when one is found")
}

// Execute implements subcommands.Command.
func (c *supersedesCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() != 2 {
		return c.UsageError("supersedes takes exactly two type names")
	}
	cat := cmdutil.Catalog(ctx)
	sup, err := cat.Lookup(fs.Arg(0))
	if err != nil {
		return c.Fail("%v", err)
	}
	sub, err := cat.Lookup(fs.Arg(1))
	if err != nil {
		return c.Fail("%v", err)
	}
	steps, ok := shape.Derive(sup, sub)
	w := cmdutil.Output(ctx)
	fmt.Fprintln(w, ok)
	if c.trace {
		for _, s := range steps {
			fmt.Fprintf(w, "  %s ⊇ %s\n", s.Sup, s.Sub)
		}
	}
	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
