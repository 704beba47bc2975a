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

import "github.com/0xsoniclabs/cairostate/common"

//go:generate mockgen -source reader.go -destination reader_mocks.go -package state

// StateReader provides read access to the chain state a transaction is
// executed on. Storage cells, nonces and class-hash bindings are defined for
// every input, with unset entries reporting the zero value. Contract classes,
// on the other hand, only exist once declared.
//
// Implementations are expected to tolerate concurrent reads if they are
// shared among multiple CachedState instances.
type StateReader interface {
	// GetStorageAt returns the value stored in the given storage cell.
	GetStorageAt(address common.ContractAddress, key common.StorageKey) (common.Felt, error)

	// GetNonceAt returns the nonce of the given contract.
	GetNonceAt(address common.ContractAddress) (common.Nonce, error)

	// GetClassHashAt returns the class hash of the contract deployed at the
	// given address, or the zero hash if there is none.
	GetClassHashAt(address common.ContractAddress) (common.ClassHash, error)

	// GetContractClass returns the class declared for the given hash. If no
	// such class was declared, an UndeclaredClassError is returned.
	GetContractClass(classHash common.ClassHash) (*common.ContractClass, error)
}
