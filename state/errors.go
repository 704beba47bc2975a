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
	"fmt"

	"github.com/0xsoniclabs/cairostate/common"
)

const (
	// ErrOutOfRangeContractAddress is returned when deploying to the reserved
	// zero address.
	ErrOutOfRangeContractAddress = common.ConstError("requested contract address is out of range")

	// ErrUnavailableContractAddress is matched by UnavailableContractAddressError.
	ErrUnavailableContractAddress = common.ConstError("requested contract address is unavailable for deployment")

	// ErrUndeclaredClass is matched by UndeclaredClassError.
	ErrUndeclaredClass = common.ConstError("class is not declared")

	// ErrClassAlreadyDeclared is returned when declaring a known class twice.
	ErrClassAlreadyDeclared = common.ConstError("class is already declared")

	// ErrArithmetic is returned for nonce values that can not be incremented
	// within 64 bits.
	ErrArithmetic = common.ConstError("arithmetic error")
)

// UnavailableContractAddressError is returned when deploying to an address
// which is already bound to a class.
type UnavailableContractAddressError struct {
	Address common.ContractAddress
}

func (e *UnavailableContractAddressError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnavailableContractAddress, e.Address)
}

func (e *UnavailableContractAddressError) Is(target error) bool {
	return target == ErrUnavailableContractAddress
}

// UndeclaredClassError is returned when looking up a class which has never
// been declared.
type UndeclaredClassError struct {
	ClassHash common.ClassHash
}

func (e *UndeclaredClassError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUndeclaredClass, e.ClassHash)
}

func (e *UndeclaredClassError) Is(target error) bool {
	return target == ErrUndeclaredClass
}
