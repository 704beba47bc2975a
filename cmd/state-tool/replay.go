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
	"io"

	"github.com/0xsoniclabs/cairostate/database"
	"github.com/0xsoniclabs/cairostate/state"
	"github.com/urfave/cli/v2"
)

var commitFlag = cli.BoolFlag{
	Name:  "commit",
	Usage: "write the resulting diff to the database",
}

var Replay = cli.Command{
	Action:    withState(replay),
	Name:      "replay",
	Usage:     "runs the writes of a TOML file on a state and prints the resulting diff",
	ArgsUsage: "<writes.toml>",
	Flags: []cli.Flag{
		&dbFlag,
		&backendFlag,
		&commitFlag,
	},
}

func replay(context *cli.Context, db database.State) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing replay file")
	}
	writes, err := loadReplay(context.Args().Get(0))
	if err != nil {
		return err
	}

	cached := state.NewCachedState(db)
	if err := writes.applyTo(cached); err != nil {
		return err
	}
	diff := cached.ToStateDiff()
	if err := printDiff(context.App.Writer, diff); err != nil {
		return err
	}
	if context.Bool(commitFlag.Name) {
		return db.Apply(diff)
	}
	return nil
}

// printDiff writes the diff in its iteration order.
func printDiff(out io.Writer, diff *state.StateDiff) error {
	if diff.IsEmpty() {
		_, err := fmt.Fprintln(out, "no changes")
		return err
	}
	for address, hash := range diff.DeployedContracts.All() {
		if _, err := fmt.Fprintf(out, "deployed %v: %v\n", address, hash); err != nil {
			return err
		}
	}
	for address, storage := range diff.StorageDiffs.All() {
		for key, value := range storage.All() {
			if _, err := fmt.Fprintf(out, "storage %v/%v: %v\n", address, key, value); err != nil {
				return err
			}
		}
	}
	for hash := range diff.DeclaredClasses.All() {
		if _, err := fmt.Fprintf(out, "class %v\n", hash); err != nil {
			return err
		}
	}
	for address, nonce := range diff.Nonces.All() {
		if _, err := fmt.Fprintf(out, "nonce %v: %v\n", address, nonce); err != nil {
			return err
		}
	}
	return nil
}
