// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package reference

import (
	"bytes"
	"slices"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/cairostate/state"
	"golang.org/x/exp/maps"
)

// Reader is an in-memory implementation of the state.StateReader interface
// backed by plain maps. Absent storage cells, nonces and class hashes read as
// zero, absent classes produce an UndeclaredClassError.
//
// Reads never modify the reader, so it may be shared by any number of
// concurrently used CachedState instances. Updates must not run concurrently
// with reads.
type Reader struct {
	storage     map[common.StorageEntry]common.Felt
	nonces      map[common.ContractAddress]common.Nonce
	classHashes map[common.ContractAddress]common.ClassHash
	classes     map[common.ClassHash]*common.ContractClass
}

// NewReader creates a new, empty reader.
func NewReader() *Reader {
	return &Reader{
		storage:     map[common.StorageEntry]common.Felt{},
		nonces:      map[common.ContractAddress]common.Nonce{},
		classHashes: map[common.ContractAddress]common.ClassHash{},
		classes:     map[common.ClassHash]*common.ContractClass{},
	}
}

func (r *Reader) GetStorageAt(address common.ContractAddress, key common.StorageKey) (common.Felt, error) {
	return r.storage[common.StorageEntry{Address: address, Key: key}], nil
}

func (r *Reader) GetNonceAt(address common.ContractAddress) (common.Nonce, error) {
	return r.nonces[address], nil
}

func (r *Reader) GetClassHashAt(address common.ContractAddress) (common.ClassHash, error) {
	return r.classHashes[address], nil
}

func (r *Reader) GetContractClass(classHash common.ClassHash) (*common.ContractClass, error) {
	class, found := r.classes[classHash]
	if !found {
		return nil, &state.UndeclaredClassError{ClassHash: classHash}
	}
	return class, nil
}

// --- Updates ---

func (r *Reader) SetStorage(address common.ContractAddress, key common.StorageKey, value common.Felt) {
	r.storage[common.StorageEntry{Address: address, Key: key}] = value
}

func (r *Reader) SetNonce(address common.ContractAddress, nonce common.Nonce) {
	r.nonces[address] = nonce
}

func (r *Reader) SetClassHash(address common.ContractAddress, classHash common.ClassHash) {
	r.classHashes[address] = classHash
}

func (r *Reader) DeclareClass(classHash common.ClassHash, class *common.ContractClass) {
	r.classes[classHash] = class
}

// Apply integrates the given diff into the reader's state.
func (r *Reader) Apply(diff *state.StateDiff) error {
	for address, classHash := range diff.DeployedContracts.All() {
		r.SetClassHash(address, classHash)
	}
	for address, storage := range diff.StorageDiffs.All() {
		for key, value := range storage.All() {
			r.SetStorage(address, key, value)
		}
	}
	for classHash, class := range diff.DeclaredClasses.All() {
		r.DeclareClass(classHash, class)
	}
	for address, nonce := range diff.Nonces.All() {
		r.SetNonce(address, nonce)
	}
	return nil
}

func (r *Reader) Close() error {
	return nil
}

// --- Export ---

// Export lists the content of the reader as a diff relative to the empty
// state. All mappings are sorted by key, making the result independent of
// the order in which updates were applied.
func (r *Reader) Export() *state.StateDiff {
	res := state.NewStateDiff()

	addresses := maps.Keys(r.classHashes)
	sortFelts(addresses)
	for _, address := range addresses {
		res.DeployedContracts.Set(address, r.classHashes[address])
	}

	entries := maps.Keys(r.storage)
	slices.SortFunc(entries, func(a, b common.StorageEntry) int {
		if c := bytes.Compare(a.Address[:], b.Address[:]); c != 0 {
			return c
		}
		return bytes.Compare(a.Key[:], b.Key[:])
	})
	for _, entry := range entries {
		storage, found := res.StorageDiffs.Get(entry.Address)
		if !found {
			storage = common.NewOrderedMap[common.StorageKey, common.Felt]()
			res.StorageDiffs.Set(entry.Address, storage)
		}
		storage.Set(entry.Key, r.storage[entry])
	}

	hashes := maps.Keys(r.classes)
	sortFelts(hashes)
	for _, hash := range hashes {
		res.DeclaredClasses.Set(hash, r.classes[hash])
	}

	addresses = maps.Keys(r.nonces)
	sortFelts(addresses)
	for _, address := range addresses {
		res.Nonces.Set(address, r.nonces[address])
	}
	return res
}

func sortFelts[T ~[32]byte](list []T) {
	slices.SortFunc(list, func(a, b T) int {
		return bytes.Compare(a[:], b[:])
	})
}
