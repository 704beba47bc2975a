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

// stateCache caches read and write requests for the per-contract state
// cells. Entries are never removed from any of its maps.
type stateCache struct {
	storage     cachedValues[common.StorageEntry, common.Felt]
	nonces      cachedValues[common.ContractAddress, common.Nonce]
	classHashes cachedValues[common.ContractAddress, common.ClassHash]
}

// cachedValues tracks, per key, the value observed by the first read of the
// underlying reader and the value most recently written. The initial value of
// a key, once recorded, is never replaced.
type cachedValues[K comparable, V comparable] struct {
	initial common.OrderedMap[K, V] // < values read before any write, per key
	writes  common.OrderedMap[K, V] // < last written value, per key
}

// get resolves the current value of a key, preferring writes over initial
// values. The boolean result is false if neither is known.
func (c *cachedValues[K, V]) get(key K) (V, bool) {
	if value, found := c.writes.Get(key); found {
		return value, true
	}
	return c.initial.Get(key)
}

func (c *cachedValues[K, V]) setInitialValue(key K, value V) {
	if c.initial.Has(key) {
		panic(fmt.Sprintf("initial value of %v already recorded", key))
	}
	c.initial.Set(key, value)
}

func (c *cachedValues[K, V]) setValue(key K, value V) {
	c.writes.Set(key, value)
}

// netChanges lists the written entries whose value differs from the initial
// value of the same key, or which have no initial value at all. Entries are
// in write order.
func (c *cachedValues[K, V]) netChanges() *common.OrderedMap[K, V] {
	res := common.NewOrderedMap[K, V]()
	for key, value := range c.writes.All() {
		if initial, found := c.initial.Get(key); found && initial == value {
			continue
		}
		res.Set(key, value)
	}
	return res
}
