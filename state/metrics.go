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

import "github.com/ethereum/go-ethereum/metrics"

// Metrics groups the meters updated by CachedState instances. Meters are
// safe to share among concurrently used states.
type Metrics struct {
	storageMiss   *metrics.Meter
	nonceMiss     *metrics.Meter
	classHashMiss *metrics.Meter
	classMiss     *metrics.Meter

	storageDiff  *metrics.Meter
	nonceDiff    *metrics.Meter
	deployedDiff *metrics.Meter
}

// NewMetrics looks up or registers the state meters in the given registry.
// A nil registry selects the default registry of go-ethereum.
func NewMetrics(registry metrics.Registry) *Metrics {
	return &Metrics{
		storageMiss:   metrics.GetOrRegisterMeter("state/cache/storage/miss", registry),
		nonceMiss:     metrics.GetOrRegisterMeter("state/cache/nonce/miss", registry),
		classHashMiss: metrics.GetOrRegisterMeter("state/cache/classhash/miss", registry),
		classMiss:     metrics.GetOrRegisterMeter("state/cache/class/miss", registry),

		storageDiff:  metrics.GetOrRegisterMeter("state/diff/storage", registry),
		nonceDiff:    metrics.GetOrRegisterMeter("state/diff/nonce", registry),
		deployedDiff: metrics.GetOrRegisterMeter("state/diff/deployed", registry),
	}
}
