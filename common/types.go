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

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Felt is a field element, stored as a 32-byte big-endian value. The zero
// value is the default value of every state cell.
type Felt [32]byte

// ContractAddress identifies a deployed contract instance.
type ContractAddress Felt

// ClassHash is the content address of a contract class.
type ClassHash Felt

// StorageKey addresses a storage cell within a contract.
type StorageKey Felt

// Nonce is the transaction counter of an account contract.
type Nonce Felt

// StorageEntry identifies a storage cell across all contracts.
type StorageEntry struct {
	Address ContractAddress
	Key     StorageKey
}

// FeltFromUint64 converts the given integer into a field element.
func FeltFromUint64(value uint64) Felt {
	var res Felt
	binary.BigEndian.PutUint64(res[24:], value)
	return res
}

// FeltFromUint256 converts the given 256-bit integer into its 32-byte
// big-endian representation.
func FeltFromUint256(value *uint256.Int) Felt {
	return Felt(value.Bytes32())
}

// FeltFromHex parses a hex string with an optional 0x prefix. Leading zeros
// and odd digit counts are accepted.
func FeltFromHex(s string) (Felt, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) == 0 {
		return Felt{}, fmt.Errorf("invalid felt %q: empty", s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	data, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return Felt{}, fmt.Errorf("invalid felt %q: %w", s, err)
	}
	// values wider than 32 bytes are only acceptable with leading zeros
	for len(data) > len(Felt{}) {
		if data[0] != 0 {
			return Felt{}, fmt.Errorf("invalid felt %q: exceeds 32 bytes", s)
		}
		data = data[1:]
	}
	var res Felt
	copy(res[len(res)-len(data):], data)
	return res, nil
}

// MustFeltFromHex is like FeltFromHex but panics on malformed input. It is
// intended for constants and tests.
func MustFeltFromHex(s string) Felt {
	res, err := FeltFromHex(s)
	if err != nil {
		panic(err)
	}
	return res
}

func (f Felt) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(f[:])
}

func (f Felt) IsZero() bool {
	return f == Felt{}
}

func (f Felt) String() string {
	return f.Uint256().Hex()
}

func (f Felt) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Felt) UnmarshalText(text []byte) error {
	res, err := FeltFromHex(string(text))
	if err != nil {
		return err
	}
	*f = res
	return nil
}

// --- named felt types ---

func (a ContractAddress) String() string { return Felt(a).String() }
func (h ClassHash) String() string       { return Felt(h).String() }
func (k StorageKey) String() string      { return Felt(k).String() }
func (n Nonce) String() string           { return Felt(n).String() }

func (a ContractAddress) MarshalText() ([]byte, error) { return Felt(a).MarshalText() }
func (h ClassHash) MarshalText() ([]byte, error)       { return Felt(h).MarshalText() }
func (k StorageKey) MarshalText() ([]byte, error)      { return Felt(k).MarshalText() }
func (n Nonce) MarshalText() ([]byte, error)           { return Felt(n).MarshalText() }

func (a *ContractAddress) UnmarshalText(text []byte) error { return (*Felt)(a).UnmarshalText(text) }
func (h *ClassHash) UnmarshalText(text []byte) error       { return (*Felt)(h).UnmarshalText(text) }
func (k *StorageKey) UnmarshalText(text []byte) error      { return (*Felt)(k).UnmarshalText(text) }
func (n *Nonce) UnmarshalText(text []byte) error           { return (*Felt)(n).UnmarshalText(text) }

// ToNonce is a convenience function for building nonces from integers.
func ToNonce(value uint64) Nonce {
	return Nonce(FeltFromUint64(value))
}

func (e StorageEntry) String() string {
	return fmt.Sprintf("%v/%v", e.Address, e.Key)
}
