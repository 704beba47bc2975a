// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/cairostate/state"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
)

// Key prefixes of the different kinds of state entries.
const (
	storagePrefix   = 's' // < address ‖ key -> felt
	noncePrefix     = 'n' // < address -> nonce
	classHashPrefix = 'c' // < address -> class hash
	classPrefix     = 'k' // < class hash -> snappy(rlp(class))
)

// State is a persistent state.StateReader backed by LevelDB. Updates are
// applied through state diffs, each of which is written atomically. Reads
// may be issued concurrently.
type State struct {
	store     kvStore
	directory string
}

// Open opens the state stored in the given directory, creating an empty one
// if the directory holds no state yet.
func Open(directory string) (*State, error) {
	store, err := newLevelDbStore(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB in %s: %w", directory, err)
	}
	log.Info("Opened LevelDB state", "directory", directory)
	return &State{store: store, directory: directory}, nil
}

// OpenInMemory creates an empty state not backed by any files.
func OpenInMemory() (*State, error) {
	store, err := newMemoryDbStore()
	if err != nil {
		return nil, err
	}
	return &State{store: store}, nil
}

func (s *State) GetStorageAt(address common.ContractAddress, key common.StorageKey) (common.Felt, error) {
	return s.getFelt(storageKey(address, key))
}

func (s *State) GetNonceAt(address common.ContractAddress) (common.Nonce, error) {
	value, err := s.getFelt(addressKey(noncePrefix, address))
	return common.Nonce(value), err
}

func (s *State) GetClassHashAt(address common.ContractAddress) (common.ClassHash, error) {
	value, err := s.getFelt(addressKey(classHashPrefix, address))
	return common.ClassHash(value), err
}

func (s *State) GetContractClass(classHash common.ClassHash) (*common.ContractClass, error) {
	data, err := s.store.Get(classKey(classHash))
	if errors.Is(err, ErrNotFound) {
		return nil, &state.UndeclaredClassError{ClassHash: classHash}
	}
	if err != nil {
		return nil, err
	}
	class, err := decodeClass(data)
	if err != nil {
		return nil, fmt.Errorf("invalid class %v: %w", classHash, err)
	}
	return class, nil
}

// Apply writes the given diff to the database in a single batch.
func (s *State) Apply(diff *state.StateDiff) error {
	batch := new(leveldb.Batch)
	for address, classHash := range diff.DeployedContracts.All() {
		batch.Put(addressKey(classHashPrefix, address), classHash[:])
	}
	for address, storage := range diff.StorageDiffs.All() {
		for key, value := range storage.All() {
			batch.Put(storageKey(address, key), value[:])
		}
	}
	for classHash, class := range diff.DeclaredClasses.All() {
		data, err := encodeClass(class)
		if err != nil {
			return fmt.Errorf("failed to encode class %v: %w", classHash, err)
		}
		batch.Put(classKey(classHash), data)
	}
	for address, nonce := range diff.Nonces.All() {
		batch.Put(addressKey(noncePrefix, address), nonce[:])
	}
	log.Debug("Applying state diff", "entries", batch.Len())
	return s.store.Write(batch)
}

func (s *State) Close() error {
	if s.directory != "" {
		log.Info("Closing LevelDB state", "directory", s.directory)
	}
	return s.store.Close()
}

func (s *State) getFelt(key []byte) (common.Felt, error) {
	data, err := s.store.Get(key)
	if errors.Is(err, ErrNotFound) {
		return common.Felt{}, nil
	}
	if err != nil {
		return common.Felt{}, err
	}
	var res common.Felt
	if len(data) != len(res) {
		return common.Felt{}, fmt.Errorf("invalid value of length %d stored at %x", len(data), key)
	}
	copy(res[:], data)
	return res, nil
}

func storageKey(address common.ContractAddress, key common.StorageKey) []byte {
	res := make([]byte, 0, 1+len(address)+len(key))
	res = append(res, storagePrefix)
	res = append(res, address[:]...)
	return append(res, key[:]...)
}

func addressKey(prefix byte, address common.ContractAddress) []byte {
	return append([]byte{prefix}, address[:]...)
}

func classKey(classHash common.ClassHash) []byte {
	return append([]byte{classPrefix}, classHash[:]...)
}

func encodeClass(class *common.ContractClass) ([]byte, error) {
	data, err := rlp.EncodeToBytes(class)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, data), nil
}

func decodeClass(data []byte) (*common.ContractClass, error) {
	data, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	res := new(common.ContractClass)
	if err := rlp.DecodeBytes(data, res); err != nil {
		return nil, err
	}
	return res, nil
}
