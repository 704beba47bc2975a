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

	"github.com/0xsoniclabs/cairostate/database"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var Import = cli.Command{
	Action:    withState(doImport),
	Name:      "import",
	Usage:     "loads a TOML genesis file into a state database",
	ArgsUsage: "<genesis.toml>",
	Flags: []cli.Flag{
		&dbFlag,
		&backendFlag,
	},
}

func doImport(context *cli.Context, db database.State) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing genesis file")
	}
	path := context.Args().Get(0)

	genesis, err := loadGenesis(path)
	if err != nil {
		return err
	}
	diff, err := genesis.toStateDiff()
	if err != nil {
		return err
	}
	if err := db.Apply(diff); err != nil {
		return err
	}
	log.Info("Imported genesis", "file", path, "contracts", len(genesis.Contracts), "classes", len(genesis.Classes))
	return nil
}
