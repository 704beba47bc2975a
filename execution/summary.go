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

import (
	"fmt"

	"github.com/0xsoniclabs/cairostate/common"
	"github.com/0xsoniclabs/tracy"
	mapset "github.com/deckarep/golang-set/v2"
)

// ExecutionSummary aggregates the data of call trees relevant for fee
// computation. Summaries can be merged, with the empty summary being the
// neutral element. Merging is associative and, except for the order of the
// payload lengths, commutative.
type ExecutionSummary struct {
	ExecutedClassHashes   mapset.Set[common.ClassHash]
	VisitedStorageEntries mapset.Set[common.StorageEntry]
	L2ToL1PayloadLengths  []int
	NumEvents             int
}

// NewExecutionSummary creates an empty summary.
func NewExecutionSummary() *ExecutionSummary {
	return &ExecutionSummary{
		ExecutedClassHashes:   mapset.NewThreadUnsafeSet[common.ClassHash](),
		VisitedStorageEntries: mapset.NewThreadUnsafeSet[common.StorageEntry](),
	}
}

// Summarize collects the summary of the call tree rooted by c. All calls of
// the tree must have their class hash set.
func (c *CallInfo) Summarize() *ExecutionSummary {
	zone := tracy.ZoneBegin("CallInfo::Summarize")
	defer zone.End()

	res := NewExecutionSummary()
	for call := range c.All() {
		if call.Call.ClassHash == nil {
			panic(fmt.Sprintf("class hash of call to %v not set after execution", call.Call.StorageAddress))
		}
		res.ExecutedClassHashes.Add(*call.Call.ClassHash)

		if call.AccessedStorageKeys != nil {
			address := call.Call.StorageAddress
			call.AccessedStorageKeys.Each(func(key common.StorageKey) bool {
				res.VisitedStorageEntries.Add(common.StorageEntry{Address: address, Key: key})
				return false
			})
		}

		res.NumEvents += len(call.Execution.Events)
		res.L2ToL1PayloadLengths = appendPayloadLengths(res.L2ToL1PayloadLengths, call.Execution.L2ToL1Messages)
	}
	return res
}

// Merge adds the content of other to s. Payload lengths of other are
// appended after those of s. A nil other is treated as the empty summary.
func (s *ExecutionSummary) Merge(other *ExecutionSummary) {
	if other == nil {
		other = &ExecutionSummary{}
	}
	if s.ExecutedClassHashes == nil {
		s.ExecutedClassHashes = mapset.NewThreadUnsafeSet[common.ClassHash]()
	}
	if s.VisitedStorageEntries == nil {
		s.VisitedStorageEntries = mapset.NewThreadUnsafeSet[common.StorageEntry]()
	}
	if other.ExecutedClassHashes != nil {
		other.ExecutedClassHashes.Each(func(hash common.ClassHash) bool {
			s.ExecutedClassHashes.Add(hash)
			return false
		})
	}
	if other.VisitedStorageEntries != nil {
		other.VisitedStorageEntries.Each(func(entry common.StorageEntry) bool {
			s.VisitedStorageEntries.Add(entry)
			return false
		})
	}
	s.L2ToL1PayloadLengths = append(s.L2ToL1PayloadLengths, other.L2ToL1PayloadLengths...)
	s.NumEvents += other.NumEvents
}

// SumExecutionSummaries merges the given summaries in order into a new
// summary, skipping nil entries. The inputs are not modified.
func SumExecutionSummaries(summaries ...*ExecutionSummary) *ExecutionSummary {
	res := NewExecutionSummary()
	for _, summary := range summaries {
		res.Merge(summary)
	}
	return res
}

// SummarizeAll summarizes a list of call trees, skipping nil entries.
func SummarizeAll(calls ...*CallInfo) *ExecutionSummary {
	res := NewExecutionSummary()
	for _, call := range calls {
		if call != nil {
			res.Merge(call.Summarize())
		}
	}
	return res
}
