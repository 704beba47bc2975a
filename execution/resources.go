// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package execution

// ExecutionResources counts the computational resources used by a call.
type ExecutionResources struct {
	NSteps                 uint64
	NMemoryHoles           uint64
	BuiltinInstanceCounter map[string]uint64
}

// Add accumulates the resources of other into r.
func (r *ExecutionResources) Add(other *ExecutionResources) {
	r.NSteps += other.NSteps
	r.NMemoryHoles += other.NMemoryHoles
	if len(other.BuiltinInstanceCounter) == 0 {
		return
	}
	if r.BuiltinInstanceCounter == nil {
		r.BuiltinInstanceCounter = make(map[string]uint64, len(other.BuiltinInstanceCounter))
	}
	for name, count := range other.BuiltinInstanceCounter {
		r.BuiltinInstanceCounter[name] += count
	}
}
