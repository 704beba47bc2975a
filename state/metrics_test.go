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
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMetrics_CacheMissesAndDiffSizesAreReportedToRegistry(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)

	addr := common.ContractAddress{1}
	key := common.StorageKey{2}
	hash := common.ClassHash{3}
	reader.EXPECT().GetStorageAt(addr, key).Return(common.Felt{}, nil)
	reader.EXPECT().GetNonceAt(addr).Return(common.ToNonce(0), nil)
	reader.EXPECT().GetClassHashAt(addr).Return(common.ClassHash{}, nil)
	reader.EXPECT().GetContractClass(hash).Return(&common.ContractClass{}, nil)

	registry := metrics.NewRegistry()
	state := NewCachedStateWithMetrics(reader, NewMetrics(registry))
	for range 2 {
		_, err := state.GetStorageAt(addr, key)
		require.NoError(err)
	}
	state.SetStorageAt(addr, key, common.FeltFromUint64(1))
	require.NoError(state.IncrementNonce(addr))
	require.NoError(state.SetClassHashAt(addr, hash))
	_, err := state.GetContractClass(hash)
	require.NoError(err)
	state.ToStateDiff()

	counts := map[string]int64{
		"state/cache/storage/miss":   1,
		"state/cache/nonce/miss":     1,
		"state/cache/classhash/miss": 1,
		"state/cache/class/miss":     1,
		"state/diff/storage":         1,
		"state/diff/nonce":           1,
		"state/diff/deployed":        1,
	}
	for name, want := range counts {
		meter, ok := registry.Get(name).(*metrics.Meter)
		require.True(ok, "meter %s not registered", name)
		require.Equal(want, meter.Snapshot().Count(), "meter %s", name)
	}
}

func TestMetrics_RegistriesAreIndependent(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	reader := NewMockStateReader(ctrl)
	reader.EXPECT().GetNonceAt(gomock.Any()).Return(common.ToNonce(1), nil)

	first := metrics.NewRegistry()
	second := metrics.NewRegistry()
	_, err := NewCachedStateWithMetrics(reader, NewMetrics(first)).GetNonceAt(common.ContractAddress{1})
	require.NoError(err)

	require.Equal(int64(1), NewMetrics(first).nonceMiss.Snapshot().Count())
	require.Equal(int64(0), NewMetrics(second).nonceMiss.Snapshot().Count())
}
