// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmdutil holds the shared plumbing of the shape subcommands built
// on github.com/google/subcommands.
package cmdutil

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"

	"code.hybscloud.com/shape/jsonshape"
)

// Info implements the naming and documentation methods of
// subcommands.Command, a no-op SetFlags and a catalog accessor.
type Info struct {
	name     string
	synopsis string
	usage    string
}

// NewInfo returns an Info for command name with the given synopsis and usage.
func NewInfo(name, synopsis, usage string) Info {
	if !strings.HasSuffix(usage, "\n") {
		usage += "\n"
	}
	return Info{name: name, synopsis: synopsis, usage: usage}
}

// Name implements part of subcommands.Command.
func (i Info) Name() string { return i.name }

// Synopsis implements part of subcommands.Command.
func (i Info) Synopsis() string { return i.synopsis }

// Usage implements part of subcommands.Command.
func (i Info) Usage() string { return i.usage + "\nOptions:\n" }

// SetFlags implements part of subcommands.Command.
func (i Info) SetFlags(*flag.FlagSet) {}

// Fail logs an error message and returns subcommands.ExitFailure.
func (i Info) Fail(msg string, args ...any) subcommands.ExitStatus {
	log.Output(2, i.name+": "+fmt.Sprintf(msg, args...))
	return subcommands.ExitFailure
}

// UsageError logs msg with the usage string and returns subcommands.ExitUsageError.
func (i Info) UsageError(msg string) subcommands.ExitStatus {
	log.Output(2, i.name+": "+msg)
	fmt.Fprint(os.Stderr, i.usage)
	return subcommands.ExitUsageError
}

type catalogKey struct{}

// WithCatalog returns a context carrying c for the subcommands.
func WithCatalog(ctx context.Context, c *jsonshape.Catalog) context.Context {
	return context.WithValue(ctx, catalogKey{}, c)
}

// Catalog returns the catalog carried by ctx, or the standard catalog.
func Catalog(ctx context.Context) *jsonshape.Catalog {
	if c, ok := ctx.Value(catalogKey{}).(*jsonshape.Catalog); ok {
		return c
	}
	return jsonshape.Standard()
}

type outputKey struct{}

// WithOutput returns a context directing subcommand output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// Output returns the writer carried by ctx, or os.Stdout.
func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok {
		return w
	}
	return os.Stdout
}
