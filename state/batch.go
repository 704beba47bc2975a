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
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/0xsoniclabs/cairostate/common/future"
	"github.com/0xsoniclabs/tracy"
)

// Job is a unit of work executed against its own CachedState.
type Job func(*CachedState) error

// RunIsolated runs each job on a fresh CachedState reading from the shared
// reader and returns the resulting diffs in job order. Jobs run concurrently,
// so the reader must tolerate concurrent reads. The state of a failed job is
// discarded and its result carries the error instead.
func RunIsolated(reader StateReader, jobs ...Job) []future.Result[*StateDiff] {
	zone := tracy.ZoneBegin("state::RunIsolated")
	defer zone.End()

	results := make([]future.Result[*StateDiff], len(jobs))
	numWorkers := min(len(jobs), runtime.NumCPU())
	if numWorkers <= 1 {
		for i, job := range jobs {
			results[i] = runJob(reader, job)
		}
		return results
	}

	pos := atomic.Int32{}
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for range numWorkers {
		go func() {
			defer wg.Done()
			zone := tracy.ZoneBegin("state::RunIsolated::worker")
			defer zone.End()
			for {
				next := int(pos.Add(1) - 1)
				if next >= len(jobs) {
					return
				}
				results[next] = runJob(reader, jobs[next])
			}
		}()
	}
	wg.Wait()
	return results
}

func runJob(reader StateReader, job Job) future.Result[*StateDiff] {
	state := NewCachedState(reader)
	if err := job(state); err != nil {
		return future.Err[*StateDiff](err)
	}
	return future.Ok(state.ToStateDiff())
}
