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
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCachedValues_UnknownKeyIsAbsent(t *testing.T) {
	values := cachedValues[int, string]{}
	_, found := values.get(1)
	require.False(t, found)
}

func TestCachedValues_WritesTakePrecedenceOverInitialValues(t *testing.T) {
	require := require.New(t)
	values := cachedValues[int, string]{}

	values.setInitialValue(1, "initial")
	got, found := values.get(1)
	require.True(found)
	require.Equal("initial", got)

	values.setValue(1, "first")
	values.setValue(1, "second")
	got, found = values.get(1)
	require.True(found)
	require.Equal("second", got)
}

func TestCachedValues_InitialValueCanOnlyBeSetOnce(t *testing.T) {
	values := cachedValues[int, string]{}
	values.setInitialValue(1, "a")
	require.Panics(t, func() { values.setInitialValue(1, "b") })

	got, _ := values.initial.Get(1)
	require.Equal(t, "a", got)
}

func TestCachedValues_NetChangesExcludeUnchangedValues(t *testing.T) {
	require := require.New(t)
	values := cachedValues[int, string]{}

	values.setInitialValue(1, "a")
	values.setInitialValue(2, "b")
	values.setInitialValue(3, "c")

	values.setValue(4, "new")
	values.setValue(1, "a")
	values.setValue(2, "changed")
	values.setValue(3, "x")
	values.setValue(3, "c")

	changes := values.netChanges()
	require.Equal([]int{4, 2}, changes.Keys())
	got, _ := changes.Get(2)
	require.Equal("changed", got)
}

func TestCachedValues_NetChangesAreInWriteOrder(t *testing.T) {
	values := cachedValues[int, int]{}
	order := []int{5, 3, 9, 1}
	for _, key := range order {
		values.setValue(key, key)
	}
	values.setValue(5, 0)

	keys := values.netChanges().Keys()
	require.True(t, slices.Equal(order, keys), "got %v", keys)
}
