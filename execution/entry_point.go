// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package execution

import (
	"github.com/0xsoniclabs/cairostate/common"
)

// CallType distinguishes regular calls from delegated library calls.
type CallType uint8

const (
	CallTypeCall CallType = iota
	CallTypeDelegate
)

func (t CallType) String() string {
	switch t {
	case CallTypeCall:
		return "CALL"
	case CallTypeDelegate:
		return "DELEGATE"
	}
	return "UNKNOWN"
}

// CallEntryPoint describes the invocation of an entry point.
type CallEntryPoint struct {
	// ClassHash is the class of the executed code. It may be unknown before
	// the execution and is set by the interpreter at the latest when the call
	// has completed.
	ClassHash          *common.ClassHash
	CodeAddress        *common.ContractAddress
	EntryPointType     common.EntryPointType
	EntryPointSelector common.Felt
	Calldata           []common.Felt
	StorageAddress     common.ContractAddress
	CallerAddress      common.ContractAddress
	CallType           CallType
	InitialGas         uint64
}
