// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/tracy"
)

// StateDiff is the net change of a state produced by a CachedState. The
// iteration order of every mapping is the order in which the changes were
// first recorded and is relevant for computing commitments over the diff.
type StateDiff struct {
	DeployedContracts *common.OrderedMap[common.ContractAddress, common.ClassHash]
	StorageDiffs      *common.OrderedMap[common.ContractAddress, *common.OrderedMap[common.StorageKey, common.Felt]]
	DeclaredClasses   *common.OrderedMap[common.ClassHash, *common.ContractClass]
	Nonces            *common.OrderedMap[common.ContractAddress, common.Nonce]
}

// NewStateDiff creates an empty diff.
func NewStateDiff() *StateDiff {
	return &StateDiff{
		DeployedContracts: common.NewOrderedMap[common.ContractAddress, common.ClassHash](),
		StorageDiffs:      common.NewOrderedMap[common.ContractAddress, *common.OrderedMap[common.StorageKey, common.Felt]](),
		DeclaredClasses:   common.NewOrderedMap[common.ClassHash, *common.ContractClass](),
		Nonces:            common.NewOrderedMap[common.ContractAddress, common.Nonce](),
	}
}

// IsEmpty reports whether the diff carries no changes at all.
func (d *StateDiff) IsEmpty() bool {
	return d.DeployedContracts.Len() == 0 &&
		d.StorageDiffs.Len() == 0 &&
		d.DeclaredClasses.Len() == 0 &&
		d.Nonces.Len() == 0
}

// GetStorage looks up a storage value in the diff.
func (d *StateDiff) GetStorage(address common.ContractAddress, key common.StorageKey) (common.Felt, bool) {
	storage, found := d.StorageDiffs.Get(address)
	if !found {
		return common.Felt{}, false
	}
	return storage.Get(key)
}

// ToStateDiff consumes the state and returns its net changes relative to the
// values observed from the underlying reader. Storage cells, nonces and
// deployments are included if they were written and either never read before
// or written with a different value. All classes known to the state are
// included as declared classes.
//
// The CachedState must not be used after this call.
func (s *CachedState) ToStateDiff() *StateDiff {
	zone := tracy.ZoneBegin("CachedState::ToStateDiff")
	defer zone.End()

	cache := s.getCache()
	classes := s.getClasses()
	s.cache, s.classes = nil, nil

	storage := cache.storage.netChanges()
	res := &StateDiff{
		DeployedContracts: cache.classHashes.netChanges(),
		StorageDiffs:      groupByAddress(storage),
		DeclaredClasses:   classes,
		Nonces:            cache.nonces.netChanges(),
	}

	s.metrics.storageDiff.Mark(int64(storage.Len()))
	s.metrics.nonceDiff.Mark(int64(res.Nonces.Len()))
	s.metrics.deployedDiff.Mark(int64(res.DeployedContracts.Len()))
	return res
}

func groupByAddress(
	storage *common.OrderedMap[common.StorageEntry, common.Felt],
) *common.OrderedMap[common.ContractAddress, *common.OrderedMap[common.StorageKey, common.Felt]] {
	res := common.NewOrderedMap[common.ContractAddress, *common.OrderedMap[common.StorageKey, common.Felt]]()
	for entry, value := range storage.All() {
		perAddress, found := res.Get(entry.Address)
		if !found {
			perAddress = common.NewOrderedMap[common.StorageKey, common.Felt]()
			res.Set(entry.Address, perAddress)
		}
		perAddress.Set(entry.Key, value)
	}
	return res
}
