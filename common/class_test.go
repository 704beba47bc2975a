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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryPointsByType_GetSelectsListByType(t *testing.T) {
	require := require.New(t)
	entryPoints := EntryPointsByType{
		External:    []EntryPoint{{Selector: Felt{1}}, {Selector: Felt{2}}},
		L1Handler:   []EntryPoint{{Selector: Felt{3}}},
		Constructor: []EntryPoint{{Selector: Felt{4}, Offset: 12}},
	}

	require.Equal(entryPoints.External, entryPoints.Get(EntryPointTypeExternal))
	require.Equal(entryPoints.L1Handler, entryPoints.Get(EntryPointTypeL1Handler))
	require.Equal(entryPoints.Constructor, entryPoints.Get(EntryPointTypeConstructor))
	require.Nil(entryPoints.Get(EntryPointType(42)))
	require.Equal("UNKNOWN", EntryPointType(42).String())
}
