// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageSegmentLength(t *testing.T) {
	five := 5
	zero := 0
	tests := map[string]struct {
		lengths   []int
		l1Handler *int
		want      int
	}{
		"no messages":            {want: 0},
		"single message":         {lengths: []int{2}, want: 5},
		"multiple messages":      {lengths: []int{0, 1, 4}, want: 14},
		"l1 handler only":        {l1Handler: &five, want: 10},
		"empty l1 handler":       {l1Handler: &zero, want: 5},
		"messages and l1handler": {lengths: []int{1}, l1Handler: &five, want: 14},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.want, MessageSegmentLength(test.lengths, test.l1Handler))
		})
	}
}
