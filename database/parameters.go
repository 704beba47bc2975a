// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package database

import (
	"fmt"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/cairostate/database/flat"
	"github.com/0xsoniclabs/cairostate/database/ldb"
	"github.com/0xsoniclabs/cairostate/database/reference"
	"github.com/0xsoniclabs/cairostate/state"
)

const ErrUnsupportedConfiguration = common.ConstError("unsupported configuration")

// BackendType selects the implementation backing a State.
type BackendType string

const (
	MemoryBackend      BackendType = "memory"
	LevelDbBackend     BackendType = "leveldb"
	FlatLevelDbBackend BackendType = "flat-leveldb" // < LevelDB with an in-memory write-back layer
)

// Parameters configures the State opened by OpenState.
type Parameters struct {
	Directory string      `toml:"directory"`
	Backend   BackendType `toml:"backend"`
}

// State is a StateReader which can be updated by applying state diffs.
type State interface {
	state.StateReader

	// Apply integrates the given diff into the state.
	Apply(diff *state.StateDiff) error

	// Close releases all resources held by the state.
	Close() error
}

// OpenState creates the State described by the given parameters. An empty
// backend defaults to the memory backend.
func OpenState(params Parameters) (State, error) {
	switch params.Backend {
	case "", MemoryBackend:
		return reference.NewReader(), nil
	case LevelDbBackend, FlatLevelDbBackend:
		if params.Directory == "" {
			return nil, fmt.Errorf("%w: no directory for %v backend", ErrUnsupportedConfiguration, params.Backend)
		}
		db, err := ldb.Open(params.Directory)
		if err != nil {
			return nil, err
		}
		if params.Backend == FlatLevelDbBackend {
			return flat.NewState(db), nil
		}
		return db, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrUnsupportedConfiguration, params.Backend)
}

func (p Parameters) String() string {
	return fmt.Sprintf("%s:%s", p.Backend, p.Directory)
}
