// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/coriumchain/coriumd/node/blockassembler"
)

func main() {
	app := &cli.App{
		Name:  "coriumd-tool",
		Usage: "developer utilities for the block assembler",
		Commands: []*cli.Command{
			describeOptionsCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// describeOptionsCmd builds the Options a node would use for the supplied
// flags and dumps them, the same way a developer would want to confirm a
// `-blockmaxweight`/`-blockminfeerate` combination before restarting a node.
func describeOptionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "describe-options",
		Usage: "resolve block-assembler options from flags and print them",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "blockminfeerate", Value: 0},
			&cli.Uint64Flag{Name: "blockmaxweight", Value: 0},
			&cli.BoolFlag{Name: "staking"},
			&cli.BoolFlag{Name: "disablecontractstaking"},
			&cli.BoolFlag{Name: "printpriority"},
			&cli.Uint64Flag{Name: "dgpmaxblockweight", Value: 4_000_000},
		},
		Action: func(c *cli.Context) error {
			opts := blockassembler.DefaultOptions()
			if v := c.Int64("blockminfeerate"); v != 0 {
				opts.BlockMinFeeRate = v
			}
			if v := c.Uint64("blockmaxweight"); v != 0 {
				opts.BlockMaxWeight = v
			}
			opts.Staking = c.Bool("staking")
			opts.DisableContractStaking = c.Bool("disablecontractstaking")
			opts.PrintPriority = c.Bool("printpriority")

			spew.Dump(opts)
			return nil
		},
	}
}
