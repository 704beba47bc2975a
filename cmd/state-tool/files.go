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
	"github.com/0xsoniclabs/cairostate/database/reference"
	"github.com/0xsoniclabs/cairostate/state"
	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// genesisFile is the TOML layout of an initial state.
//
//	[[contracts]]
//	address = "0x1"
//	class_hash = "0x2"
//	nonce = 1
//	[contracts.storage]
//	"0x10" = "0x5"
//
//	[[classes]]
//	hash = "0x2"
//	program = "0x0102"
type genesisFile struct {
	Contracts []genesisContract `toml:"contracts"`
	Classes   []classFile       `toml:"classes"`
}

type genesisContract struct {
	Address   common.ContractAddress `toml:"address"`
	ClassHash common.ClassHash       `toml:"class_hash"`
	Nonce     uint64                 `toml:"nonce"`
	Storage   map[string]common.Felt `toml:"storage"`
}

type classFile struct {
	Hash    common.ClassHash `toml:"hash"`
	Program string           `toml:"program"`
}

func (c *classFile) toClass() (*common.ContractClass, error) {
	program, err := hexutil.Decode(c.Program)
	if err != nil {
		return nil, fmt.Errorf("invalid program of class %v: %w", c.Hash, err)
	}
	return &common.ContractClass{Program: program}, nil
}

func loadGenesis(path string) (*genesisFile, error) {
	var res genesisFile
	if _, err := toml.DecodeFile(path, &res); err != nil {
		return nil, fmt.Errorf("failed to parse genesis file %s: %w", path, err)
	}
	return &res, nil
}

// toStateDiff converts the genesis into a diff relative to the empty state.
func (g *genesisFile) toStateDiff() (*state.StateDiff, error) {
	reader := reference.NewReader()
	for _, contract := range g.Contracts {
		if contract.Address == (common.ContractAddress{}) {
			return nil, state.ErrOutOfRangeContractAddress
		}
		reader.SetClassHash(contract.Address, contract.ClassHash)
		if contract.Nonce != 0 {
			reader.SetNonce(contract.Address, common.ToNonce(contract.Nonce))
		}
		for key, value := range contract.Storage {
			storageKey, err := common.FeltFromHex(key)
			if err != nil {
				return nil, fmt.Errorf("invalid storage key of %v: %w", contract.Address, err)
			}
			reader.SetStorage(contract.Address, common.StorageKey(storageKey), value)
		}
	}
	for _, class := range g.Classes {
		decoded, err := class.toClass()
		if err != nil {
			return nil, err
		}
		reader.DeclareClass(class.Hash, decoded)
	}
	return reader.Export(), nil
}

// replayFile is the TOML layout of a sequence of state updates.
//
//	[[writes]]
//	op = "set_storage"
//	address = "0x1"
//	key = "0x10"
//	value = "0x7"
//
//	[[writes]]
//	op = "increment_nonce"
//	address = "0x1"
//
//	[[writes]]
//	op = "deploy"
//	address = "0x3"
//	class_hash = "0x2"
type replayFile struct {
	Writes  []replayWrite `toml:"writes"`
	Classes []classFile   `toml:"classes"`
}

type replayWrite struct {
	Op        string                 `toml:"op"`
	Address   common.ContractAddress `toml:"address"`
	Key       common.StorageKey      `toml:"key"`
	Value     common.Felt            `toml:"value"`
	ClassHash common.ClassHash       `toml:"class_hash"`
}

func loadReplay(path string) (*replayFile, error) {
	var res replayFile
	if _, err := toml.DecodeFile(path, &res); err != nil {
		return nil, fmt.Errorf("failed to parse replay file %s: %w", path, err)
	}
	return &res, nil
}

// applyTo runs the updates of the file on the given state. Classes are
// declared before any of the writes.
func (r *replayFile) applyTo(cached *state.CachedState) error {
	for _, class := range r.Classes {
		decoded, err := class.toClass()
		if err != nil {
			return err
		}
		if err := cached.SetContractClass(class.Hash, decoded); err != nil {
			return err
		}
	}
	for i, write := range r.Writes {
		var err error
		switch write.Op {
		case "set_storage":
			cached.SetStorageAt(write.Address, write.Key, write.Value)
		case "increment_nonce":
			err = cached.IncrementNonce(write.Address)
		case "deploy":
			err = cached.SetClassHashAt(write.Address, write.ClassHash)
		default:
			err = fmt.Errorf("unknown operation %q", write.Op)
		}
		if err != nil {
			return fmt.Errorf("write %d failed: %w", i, err)
		}
	}
	return nil
}
