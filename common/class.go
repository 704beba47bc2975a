// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// ContractClass is the compiled code of a contract, addressed by its class
// hash. Instances are immutable once declared and may be shared freely.
type ContractClass struct {
	Program     []byte
	EntryPoints EntryPointsByType
}

// EntryPointsByType lists the entry points of a class per entry point type.
type EntryPointsByType struct {
	External    []EntryPoint
	L1Handler   []EntryPoint
	Constructor []EntryPoint
}

// EntryPoint is a callable function of a class, identified by its selector.
type EntryPoint struct {
	Selector Felt
	Offset   uint64
}

// EntryPointType distinguishes the ways an entry point can be invoked.
type EntryPointType uint8

const (
	EntryPointTypeExternal EntryPointType = iota
	EntryPointTypeL1Handler
	EntryPointTypeConstructor
)

func (t EntryPointType) String() string {
	switch t {
	case EntryPointTypeExternal:
		return "EXTERNAL"
	case EntryPointTypeL1Handler:
		return "L1_HANDLER"
	case EntryPointTypeConstructor:
		return "CONSTRUCTOR"
	}
	return "UNKNOWN"
}

// Get returns the entry points registered for the given type.
func (e *EntryPointsByType) Get(kind EntryPointType) []EntryPoint {
	switch kind {
	case EntryPointTypeExternal:
		return e.External
	case EntryPointTypeL1Handler:
		return e.L1Handler
	case EntryPointTypeConstructor:
		return e.Constructor
	}
	return nil
}
