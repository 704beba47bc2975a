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
	"testing"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStateDiff_NewStateDiffIsEmpty(t *testing.T) {
	require.True(t, NewStateDiff().IsEmpty())
}

func TestStateDiff_UntouchedStateProducesEmptyDiff(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	state := NewCachedState(reader)
	require.True(t, state.ToStateDiff().IsEmpty())
}

func TestStateDiff_ContainsOnlyNetStorageChanges(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	addr1 := common.ContractAddress{1}
	key1 := common.StorageKey{1}
	key2 := common.StorageKey{2}
	key3 := common.StorageKey{3}
	key4 := common.StorageKey{4}

	reader.EXPECT().GetStorageAt(addr1, key1).Return(common.FeltFromUint64(5), nil)
	reader.EXPECT().GetStorageAt(addr1, key2).Return(common.FeltFromUint64(6), nil)
	reader.EXPECT().GetStorageAt(addr1, key3).Return(common.FeltFromUint64(7), nil)

	state := NewCachedState(reader)

	// changed value
	value, err := state.GetStorageAt(addr1, key1)
	require.NoError(err)
	require.Equal(common.FeltFromUint64(5), value)
	state.SetStorageAt(addr1, key1, common.FeltFromUint64(9))
	value, err = state.GetStorageAt(addr1, key1)
	require.NoError(err)
	require.Equal(common.FeltFromUint64(9), value)

	// read only
	_, err = state.GetStorageAt(addr1, key2)
	require.NoError(err)

	// written back to its initial value
	_, err = state.GetStorageAt(addr1, key3)
	require.NoError(err)
	state.SetStorageAt(addr1, key3, common.FeltFromUint64(8))
	state.SetStorageAt(addr1, key3, common.FeltFromUint64(7))

	// written without being read, even if the value is the default
	state.SetStorageAt(addr1, key4, common.Felt{})

	diff := state.ToStateDiff()
	require.Equal([]common.ContractAddress{addr1}, diff.StorageDiffs.Keys())
	storage, _ := diff.StorageDiffs.Get(addr1)
	require.Equal([]common.StorageKey{key1, key4}, storage.Keys())

	got, found := diff.GetStorage(addr1, key1)
	require.True(found)
	require.Equal(common.FeltFromUint64(9), got)

	_, found = diff.GetStorage(addr1, key2)
	require.False(found)
}

func TestStateDiff_StorageIsGroupedByAddressInFirstWriteOrder(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	addr1 := common.ContractAddress{1}
	addr2 := common.ContractAddress{2}
	key1 := common.StorageKey{1}
	key2 := common.StorageKey{2}

	state := NewCachedState(reader)
	state.SetStorageAt(addr2, key2, common.FeltFromUint64(1))
	state.SetStorageAt(addr1, key1, common.FeltFromUint64(2))
	state.SetStorageAt(addr2, key1, common.FeltFromUint64(3))
	state.SetStorageAt(addr1, key2, common.FeltFromUint64(4))
	state.SetStorageAt(addr2, key2, common.FeltFromUint64(5))

	diff := state.ToStateDiff()
	require.Equal([]common.ContractAddress{addr2, addr1}, diff.StorageDiffs.Keys())

	storage2, _ := diff.StorageDiffs.Get(addr2)
	require.Equal([]common.StorageKey{key2, key1}, storage2.Keys())
	got, _ := storage2.Get(key2)
	require.Equal(common.FeltFromUint64(5), got)

	storage1, _ := diff.StorageDiffs.Get(addr1)
	require.Equal([]common.StorageKey{key1, key2}, storage1.Keys())
}

func TestStateDiff_ContainsIncrementedNonces(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	addr1 := common.ContractAddress{1}
	addr2 := common.ContractAddress{2}
	reader.EXPECT().GetNonceAt(addr1).Return(common.ToNonce(3), nil)
	reader.EXPECT().GetNonceAt(addr2).Return(common.ToNonce(0), nil)

	state := NewCachedState(reader)
	require.NoError(state.IncrementNonce(addr2))
	require.NoError(state.IncrementNonce(addr1))
	require.NoError(state.IncrementNonce(addr2))

	diff := state.ToStateDiff()
	require.Equal([]common.ContractAddress{addr2, addr1}, diff.Nonces.Keys())
	nonce, _ := diff.Nonces.Get(addr1)
	require.Equal(common.ToNonce(4), nonce)
	nonce, _ = diff.Nonces.Get(addr2)
	require.Equal(common.ToNonce(2), nonce)
}

func TestStateDiff_ContainsDeployedContracts(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	addr1 := common.ContractAddress{1}
	addr2 := common.ContractAddress{2}
	reader.EXPECT().GetClassHashAt(addr1).Return(common.ClassHash{}, nil)
	reader.EXPECT().GetClassHashAt(addr2).Return(common.ClassHash{9}, nil)

	state := NewCachedState(reader)
	require.NoError(state.SetClassHashAt(addr1, common.ClassHash{5}))
	require.Error(state.SetClassHashAt(addr2, common.ClassHash{5}))

	diff := state.ToStateDiff()
	require.Equal([]common.ContractAddress{addr1}, diff.DeployedContracts.Keys())
	hash, _ := diff.DeployedContracts.Get(addr1)
	require.Equal(common.ClassHash{5}, hash)
}

func TestStateDiff_DeclaredClassesContainAllKnownClasses(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	read := common.ClassHash{1}
	declared := common.ClassHash{2}
	readClass := &common.ContractClass{Program: []byte{1}}
	declaredClass := &common.ContractClass{Program: []byte{2}}

	reader.EXPECT().GetContractClass(read).Return(readClass, nil)
	reader.EXPECT().GetContractClass(declared).Return(nil, &UndeclaredClassError{ClassHash: declared})

	state := NewCachedState(reader)
	_, err := state.GetContractClass(read)
	require.NoError(err)
	require.NoError(state.SetContractClass(declared, declaredClass))

	diff := state.ToStateDiff()
	require.Equal([]common.ClassHash{read, declared}, diff.DeclaredClasses.Keys())
	got, _ := diff.DeclaredClasses.Get(read)
	require.Same(readClass, got)
	got, _ = diff.DeclaredClasses.Get(declared)
	require.Same(declaredClass, got)
}
