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
	"errors"
	"fmt"
	"math"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/ethereum/go-ethereum/log"
)

// CachedState is a transaction-local view on a StateReader. Reads are served
// from a cache filled on first access, writes are recorded in the cache only.
// The net effect of all writes can be extracted using ToStateDiff, which
// consumes the instance.
//
// A CachedState must not be used concurrently. Abandoning an instance without
// extracting a diff discards all of its writes.
type CachedState struct {
	reader  StateReader
	metrics *Metrics

	// Invariant: only modified through read and write operations.
	cache *stateCache

	// Read-only mapping of classes read or declared so far.
	classes *common.OrderedMap[common.ClassHash, *common.ContractClass]
}

// NewCachedState creates an empty cache on top of the given reader, reporting
// to meters of the default metrics registry.
func NewCachedState(reader StateReader) *CachedState {
	return NewCachedStateWithMetrics(reader, NewMetrics(nil))
}

// NewCachedStateWithMetrics is like NewCachedState but reports to the given
// meters.
func NewCachedStateWithMetrics(reader StateReader, metrics *Metrics) *CachedState {
	return &CachedState{
		reader:  reader,
		metrics: metrics,
		cache:   &stateCache{},
		classes: common.NewOrderedMap[common.ClassHash, *common.ContractClass](),
	}
}

func (s *CachedState) GetStorageAt(address common.ContractAddress, key common.StorageKey) (common.Felt, error) {
	cache := s.getCache()
	entry := common.StorageEntry{Address: address, Key: key}
	if _, found := cache.storage.get(entry); !found {
		value, err := s.reader.GetStorageAt(address, key)
		if err != nil {
			return common.Felt{}, fmt.Errorf("failed to read storage %v: %w", entry, err)
		}
		s.metrics.storageMiss.Mark(1)
		log.Trace("Storage read from reader", "address", address, "key", key, "value", value)
		cache.storage.setInitialValue(entry, value)
	}

	value, found := cache.storage.get(entry)
	if !found {
		panic(fmt.Sprintf("cannot retrieve storage %v from the cache", entry))
	}
	return value, nil
}

func (s *CachedState) GetNonceAt(address common.ContractAddress) (common.Nonce, error) {
	cache := s.getCache()
	if _, found := cache.nonces.get(address); !found {
		nonce, err := s.reader.GetNonceAt(address)
		if err != nil {
			return common.Nonce{}, fmt.Errorf("failed to read nonce of %v: %w", address, err)
		}
		s.metrics.nonceMiss.Mark(1)
		log.Trace("Nonce read from reader", "address", address, "nonce", nonce)
		cache.nonces.setInitialValue(address, nonce)
	}

	nonce, found := cache.nonces.get(address)
	if !found {
		panic(fmt.Sprintf("cannot retrieve nonce of %v from the cache", address))
	}
	return nonce, nil
}

func (s *CachedState) GetClassHashAt(address common.ContractAddress) (common.ClassHash, error) {
	cache := s.getCache()
	if _, found := cache.classHashes.get(address); !found {
		classHash, err := s.reader.GetClassHashAt(address)
		if err != nil {
			return common.ClassHash{}, fmt.Errorf("failed to read class hash of %v: %w", address, err)
		}
		s.metrics.classHashMiss.Mark(1)
		log.Trace("Class hash read from reader", "address", address, "class", classHash)
		cache.classHashes.setInitialValue(address, classHash)
	}

	classHash, found := cache.classHashes.get(address)
	if !found {
		panic(fmt.Sprintf("cannot retrieve class hash of %v from the cache", address))
	}
	return classHash, nil
}

// GetContractClass returns the class declared for the given hash. Classes
// not declared in this state nor in the underlying reader produce an
// UndeclaredClassError.
func (s *CachedState) GetContractClass(classHash common.ClassHash) (*common.ContractClass, error) {
	classes := s.getClasses()
	if class, found := classes.Get(classHash); found {
		return class, nil
	}

	class, err := s.reader.GetContractClass(classHash)
	if err != nil {
		return nil, err
	}
	s.metrics.classMiss.Mark(1)
	log.Trace("Class read from reader", "class", classHash)
	classes.Set(classHash, class)
	return class, nil
}

// SetStorageAt records a write of the given storage cell. The previous value
// is not read.
func (s *CachedState) SetStorageAt(address common.ContractAddress, key common.StorageKey, value common.Felt) {
	s.getCache().storage.setValue(common.StorageEntry{Address: address, Key: key}, value)
}

// IncrementNonce increases the nonce of the given contract by one. Nonces
// are incremented as 64-bit unsigned integers; values outside this range,
// including the maximum value itself, produce an ErrArithmetic error.
func (s *CachedState) IncrementNonce(address common.ContractAddress) error {
	current, err := s.GetNonceAt(address)
	if err != nil {
		return err
	}

	value := common.Felt(current).Uint256()
	if !value.IsUint64() || value.Uint64() == math.MaxUint64 {
		log.Debug("Nonce increment rejected", "address", address, "nonce", current)
		return fmt.Errorf("%w: nonce %v of %v can not be incremented", ErrArithmetic, current, address)
	}

	s.getCache().nonces.setValue(address, common.ToNonce(value.Uint64()+1))
	return nil
}

// SetClassHashAt deploys the given class at the given address. Every address
// can be deployed at most once and the zero address never.
func (s *CachedState) SetClassHashAt(address common.ContractAddress, classHash common.ClassHash) error {
	if address == (common.ContractAddress{}) {
		log.Debug("Deployment to zero address rejected", "class", classHash)
		return ErrOutOfRangeContractAddress
	}

	current, err := s.GetClassHashAt(address)
	if err != nil {
		return err
	}
	if current != (common.ClassHash{}) {
		log.Debug("Deployment to occupied address rejected", "address", address, "current", current, "class", classHash)
		return &UnavailableContractAddressError{Address: address}
	}

	s.getCache().classHashes.setValue(address, classHash)
	return nil
}

// SetContractClass declares a new class. Classes already known to this state
// or its reader can not be declared again.
func (s *CachedState) SetContractClass(classHash common.ClassHash, class *common.ContractClass) error {
	_, err := s.GetContractClass(classHash)
	if err == nil {
		return fmt.Errorf("%w: %v", ErrClassAlreadyDeclared, classHash)
	}
	if !errors.Is(err, ErrUndeclaredClass) {
		return err
	}
	s.getClasses().Set(classHash, class)
	return nil
}

func (s *CachedState) getCache() *stateCache {
	if s.cache == nil {
		panic("use of consumed CachedState")
	}
	return s.cache
}

func (s *CachedState) getClasses() *common.OrderedMap[common.ClassHash, *common.ContractClass] {
	if s.classes == nil {
		panic("use of consumed CachedState")
	}
	return s.classes
}
