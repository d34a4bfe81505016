// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Binary shape queries the standard catalog of JSON structural types.
//
// Examples:
//
//	# List every type in the catalog.
//	shape list
//
//	# Check a document against a type.
//	echo '[1, 2, 3]' | shape has '(Array Integer)'
//
//	# Ask whether one type subsumes another, with the derivation.
//	shape supersedes -trace Number Integer
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"code.hybscloud.com/shape/internal/cmdutil"
	"code.hybscloud.com/shape/jsonshape"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shape: ")
	flag.Parse()

	subcommands.Register(&listCmd{Info: listInfo}, "catalog")
	subcommands.Register(&describeCmd{Info: describeInfo}, "catalog")
	subcommands.Register(&hasCmd{Info: hasInfo, in: os.Stdin}, "query")
	subcommands.Register(&supersedesCmd{Info: supersedesInfo}, "query")

	subcommands.Register(subcommands.FlagsCommand(), "info")
	subcommands.Register(subcommands.HelpCommand(), "info")

	ctx := cmdutil.WithCatalog(context.Background(), jsonshape.Standard())
	os.Exit(int(subcommands.Execute(ctx)))
}
