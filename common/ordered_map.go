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
	"iter"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMap is a map remembering the order in which keys got inserted.
// Updating the value of an existing key retains the key's position. Entries
// can not be removed. The zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	entries *orderedmap.OrderedMap[K, V] // < nil until the first Set
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{entries: orderedmap.NewOrderedMap[K, V]()}
}

// Set associates the given value with the key. New keys are appended to
// the end of the iteration order.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.entries == nil {
		m.entries = orderedmap.NewOrderedMap[K, V]()
	}
	m.entries.Set(key, value)
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m.entries == nil {
		var zero V
		return zero, false
	}
	return m.entries.Get(key)
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

func (m *OrderedMap[K, V]) Len() int {
	if m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m.entries == nil {
		return nil
	}
	return m.entries.Keys()
}

// All iterates over all entries in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.entries == nil {
			return
		}
		for el := m.entries.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}
