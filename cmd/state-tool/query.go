// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/cairostate/database"
	"github.com/urfave/cli/v2"
)

var Query = cli.Command{
	Name:  "query",
	Usage: "reads individual values from a state database",
	Flags: []cli.Flag{
		&dbFlag,
		&backendFlag,
	},
	Subcommands: []*cli.Command{
		{
			Action:    withState(queryStorage),
			Name:      "storage",
			Usage:     "prints the value of a storage cell",
			ArgsUsage: "<address> <key>",
		},
		{
			Action:    withState(queryNonce),
			Name:      "nonce",
			Usage:     "prints the nonce of a contract",
			ArgsUsage: "<address>",
		},
		{
			Action:    withState(queryClassHash),
			Name:      "class-hash",
			Usage:     "prints the class hash of a contract",
			ArgsUsage: "<address>",
		},
		{
			Action:    withState(queryClass),
			Name:      "class",
			Usage:     "prints a summary of a declared class",
			ArgsUsage: "<class hash>",
		},
	},
}

// parseArgs parses the expected number of felt arguments.
func parseArgs(context *cli.Context, names ...string) ([]common.Felt, error) {
	if context.Args().Len() != len(names) {
		return nil, fmt.Errorf("expected arguments %v, got %d arguments", names, context.Args().Len())
	}
	res := make([]common.Felt, len(names))
	for i, name := range names {
		value, err := common.FeltFromHex(context.Args().Get(i))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		res[i] = value
	}
	return res, nil
}

func queryStorage(context *cli.Context, db database.State) error {
	args, err := parseArgs(context, "address", "key")
	if err != nil {
		return err
	}
	value, err := db.GetStorageAt(common.ContractAddress(args[0]), common.StorageKey(args[1]))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(context.App.Writer, value)
	return err
}

func queryNonce(context *cli.Context, db database.State) error {
	args, err := parseArgs(context, "address")
	if err != nil {
		return err
	}
	nonce, err := db.GetNonceAt(common.ContractAddress(args[0]))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(context.App.Writer, nonce)
	return err
}

func queryClassHash(context *cli.Context, db database.State) error {
	args, err := parseArgs(context, "address")
	if err != nil {
		return err
	}
	hash, err := db.GetClassHashAt(common.ContractAddress(args[0]))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(context.App.Writer, hash)
	return err
}

func queryClass(context *cli.Context, db database.State) error {
	args, err := parseArgs(context, "class hash")
	if err != nil {
		return err
	}
	class, err := db.GetContractClass(common.ClassHash(args[0]))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(context.App.Writer, "program: %d bytes\n", len(class.Program)); err != nil {
		return err
	}
	for _, kind := range []common.EntryPointType{
		common.EntryPointTypeExternal,
		common.EntryPointTypeL1Handler,
		common.EntryPointTypeConstructor,
	} {
		if _, err := fmt.Fprintf(context.App.Writer, "%v: %d entry points\n", kind, len(class.EntryPoints.Get(kind))); err != nil {
			return err
		}
	}
	return nil
}
