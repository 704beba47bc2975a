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
	"errors"
	"fmt"

	"github.com/0xsoniclabs/cairostate/database"
	"github.com/urfave/cli/v2"
)

var (
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level, 0 (critical) to 5 (trace)",
		Value: 3,
	}
	dbFlag = cli.StringFlag{
		Name:  "db",
		Usage: "directory of the state database, not needed by the memory backend",
	}
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: fmt.Sprintf("state backend, one of %q, %q or %q", database.LevelDbBackend, database.FlatLevelDbBackend, database.MemoryBackend),
		Value: string(database.LevelDbBackend),
	}
)

// withState wraps an action requiring access to the state database selected
// by the command line flags. The database is closed when the action is done.
func withState(action func(*cli.Context, database.State) error) cli.ActionFunc {
	return func(context *cli.Context) error {
		params := database.Parameters{
			Directory: context.String(dbFlag.Name),
			Backend:   database.BackendType(context.String(backendFlag.Name)),
		}
		db, err := database.OpenState(params)
		if err != nil {
			return err
		}
		return errors.Join(
			action(context, db),
			db.Close(),
		)
	}
}
