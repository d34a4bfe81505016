// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"code.hybscloud.com/shape"
	"code.hybscloud.com/shape/internal/cmdutil"
)

var listInfo = cmdutil.NewInfo("list", "list the types of the catalog",
	`list

Print one line per registered type: display name, canonical name and
canonical documentation reference, separated by tabs.`)

type listCmd struct {
	cmdutil.Info
}

// Execute implements subcommands.Command.
func (c *listCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() != 0 {
		return c.UsageError("list takes no arguments")
	}
	w := cmdutil.Output(ctx)
	for _, t := range cmdutil.Catalog(ctx).Types() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name(), t.CanonicalName(), t.Docs()[0])
	}
	return subcommands.ExitSuccess
}

var describeInfo = cmdutil.NewInfo("describe", "print the structure of a type",
	`describe <type>

Print the kind, names, documentation references and known lattice edges
of a registered type.`)

type describeCmd struct {
	cmdutil.Info
}

// Execute implements subcommands.Command.
func (c *describeCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		return c.UsageError("describe takes exactly one type name")
	}
	t, err := cmdutil.Catalog(ctx).Lookup(fs.Arg(0))
	if err != nil {
		return c.Fail("%v", err)
	}
	w := cmdutil.Output(ctx)
	fmt.Fprintf(w, "kind:      %s\n", t.Kind())
	fmt.Fprintf(w, "names:     %s\n", strings.Join(t.Names(), ", "))
	fmt.Fprintf(w, "docs:      %s\n", strings.Join(t.Docs(), ", "))
	fmt.Fprintf(w, "subsets:   %s\n", displayNames(t.Subsets()))
	fmt.Fprintf(w, "supersets: %s\n", displayNames(t.Supersets()))
	return subcommands.ExitSuccess
}

func displayNames(types []*shape.Type[any]) string {
	if len(types) == 0 {
		return "-"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}
