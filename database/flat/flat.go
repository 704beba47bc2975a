// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package flat

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/cairostate/state"
	"github.com/0xsoniclabs/tracy"
)

// ErrClosed is returned by operations issued after Close.
const ErrClosed = common.ConstError("flat state is closed")

// backend is the persistent state updated in the background.
type backend interface {
	state.StateReader
	Apply(diff *state.StateDiff) error
	Close() error
}

// State keeps all values updated through Apply in memory and forwards the
// updates to a backend in the background. Values never updated through this
// instance are read from the backend. Since updates are retained in memory,
// reads never observe the backend lagging behind.
//
// Reads may be issued concurrently with each other and with updates.
type State struct {
	mu          sync.RWMutex
	storage     map[common.StorageEntry]common.Felt
	nonces      map[common.ContractAddress]common.Nonce
	classHashes map[common.ContractAddress]common.ClassHash
	classes     map[common.ClassHash]*common.ContractClass

	backend  backend
	cmdMu    sync.Mutex      // < serializes commands and protects closed
	closed   bool
	commands chan<- command  // < commands to background worker
	syncs    <-chan error    // < signalled when syncing with background worker
	done     <-chan struct{} // < when background work is done
}

// command is either a diff to be applied or, if nil, a sync request.
type command struct {
	diff *state.StateDiff
}

// NewState wraps the given backend. The backend is owned by the resulting
// State and closed with it.
func NewState(backend backend) *State {
	commands := make(chan command, 1024)
	syncs := make(chan error)
	done := make(chan struct{})

	go func() {
		defer close(done)
		var issues []error
		extraIssues := 0
		for command := range commands {
			if command.diff != nil {
				zone := tracy.ZoneBegin("flat::apply")
				err := backend.Apply(command.diff)
				zone.End()
				if err != nil {
					if len(issues) < 10 {
						issues = append(issues, err)
					} else {
						extraIssues++
					}
				}
			} else { // sync command
				if extraIssues > 0 {
					issues = append(issues, fmt.Errorf("%d additional errors truncated", extraIssues))
					extraIssues = 0
				}
				syncs <- errors.Join(issues...)
				issues = issues[:0]
			}
		}
	}()

	return &State{
		storage:     map[common.StorageEntry]common.Felt{},
		nonces:      map[common.ContractAddress]common.Nonce{},
		classHashes: map[common.ContractAddress]common.ClassHash{},
		classes:     map[common.ClassHash]*common.ContractClass{},
		backend:     backend,
		commands:    commands,
		syncs:       syncs,
		done:        done,
	}
}

func (s *State) GetStorageAt(address common.ContractAddress, key common.StorageKey) (common.Felt, error) {
	s.mu.RLock()
	value, found := s.storage[common.StorageEntry{Address: address, Key: key}]
	s.mu.RUnlock()
	if found {
		return value, nil
	}
	return s.backend.GetStorageAt(address, key)
}

func (s *State) GetNonceAt(address common.ContractAddress) (common.Nonce, error) {
	s.mu.RLock()
	nonce, found := s.nonces[address]
	s.mu.RUnlock()
	if found {
		return nonce, nil
	}
	return s.backend.GetNonceAt(address)
}

func (s *State) GetClassHashAt(address common.ContractAddress) (common.ClassHash, error) {
	s.mu.RLock()
	hash, found := s.classHashes[address]
	s.mu.RUnlock()
	if found {
		return hash, nil
	}
	return s.backend.GetClassHashAt(address)
}

func (s *State) GetContractClass(classHash common.ClassHash) (*common.ContractClass, error) {
	s.mu.RLock()
	class, found := s.classes[classHash]
	s.mu.RUnlock()
	if found {
		return class, nil
	}
	return s.backend.GetContractClass(classHash)
}

// Apply makes the diff visible to readers immediately and schedules it for
// being written to the backend. Errors of the backend are reported by the
// next Flush or Close.
func (s *State) Apply(diff *state.StateDiff) error {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.mu.Lock()
	for address, hash := range diff.DeployedContracts.All() {
		s.classHashes[address] = hash
	}
	for address, storage := range diff.StorageDiffs.All() {
		for key, value := range storage.All() {
			s.storage[common.StorageEntry{Address: address, Key: key}] = value
		}
	}
	for hash, class := range diff.DeclaredClasses.All() {
		s.classes[hash] = class
	}
	for address, nonce := range diff.Nonces.All() {
		s.nonces[address] = nonce
	}
	s.mu.Unlock()

	s.commands <- command{diff: diff}
	return nil
}

// Flush waits until all scheduled updates are written to the backend.
func (s *State) Flush() error {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.sync()
}

// Close writes all pending updates and closes the backend. Any later
// operation other than reads fails with ErrClosed.
func (s *State) Close() error {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	err := s.sync()
	close(s.commands)
	<-s.done
	return errors.Join(err, s.backend.Close())
}

// sync must be called with cmdMu held.
func (s *State) sync() error {
	s.commands <- command{}
	return <-s.syncs
}
