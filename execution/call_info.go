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
	"iter"

	"github.com/0xsoniclabs/cairostate/common"
	mapset "github.com/deckarep/golang-set/v2"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// EventContent is the payload of an emitted event.
type EventContent struct {
	Keys []common.Felt
	Data []common.Felt
}

// OrderedEvent is an event tagged with its transaction-wide emission order.
type OrderedEvent struct {
	Order uint64
	Event EventContent
}

// MessageToL1 is a message sent from a contract to an L1 address.
type MessageToL1 struct {
	ToAddress ethcommon.Address
	Payload   []common.Felt
}

// OrderedL2ToL1Message is a message tagged with its transaction-wide order.
type OrderedL2ToL1Message struct {
	Order   uint64
	Message MessageToL1
}

// CallExecution is the outcome of a single call, excluding the effects of its
// inner calls.
type CallExecution struct {
	Retdata        []common.Felt
	Events         []OrderedEvent
	L2ToL1Messages []OrderedL2ToL1Message
	Failed         bool
	GasConsumed    uint64
}

// CallInfo represents the full effects of executing an entry point, including
// the inner calls it invoked. Inner calls are owned by their parent.
type CallInfo struct {
	Call       CallEntryPoint
	Execution  CallExecution
	Resources  ExecutionResources
	InnerCalls []CallInfo

	// Storage accesses of this call, not including inner calls.
	StorageReadValues   []common.Felt
	AccessedStorageKeys mapset.Set[common.StorageKey]
}

// CallInfoIter traverses a call tree in depth-first pre-order. The traversal
// uses an explicit stack, so the depth of the tree is not limited by the
// size of the goroutine stack.
type CallInfoIter struct {
	stack []*CallInfo
}

// Iter creates a new iterator over the call tree rooted by c.
func (c *CallInfo) Iter() *CallInfoIter {
	return &CallInfoIter{stack: []*CallInfo{c}}
}

// Next returns the next call of the traversal. The boolean result is false
// once all calls have been visited.
func (it *CallInfoIter) Next() (*CallInfo, bool) {
	if len(it.stack) == 0 {
		return nil, false
	}
	last := len(it.stack) - 1
	call := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	// Inner calls are pushed right to left.
	for i := len(call.InnerCalls) - 1; i >= 0; i-- {
		it.stack = append(it.stack, &call.InnerCalls[i])
	}
	return call, true
}

// All enumerates the calls of the tree rooted by c in depth-first pre-order.
func (c *CallInfo) All() iter.Seq[*CallInfo] {
	return func(yield func(*CallInfo) bool) {
		it := c.Iter()
		for call, ok := it.Next(); ok; call, ok = it.Next() {
			if !yield(call) {
				return
			}
		}
	}
}

// L2ToL1PayloadLengths lists the payload lengths of all messages sent by the
// calls of the tree, in traversal order.
func (c *CallInfo) L2ToL1PayloadLengths() []int {
	var res []int
	for call := range c.All() {
		res = appendPayloadLengths(res, call.Execution.L2ToL1Messages)
	}
	return res
}

// TotalResources sums up the resources used by all calls of the tree.
func (c *CallInfo) TotalResources() ExecutionResources {
	var res ExecutionResources
	for call := range c.All() {
		res.Add(&call.Resources)
	}
	return res
}

func appendPayloadLengths(lengths []int, messages []OrderedL2ToL1Message) []int {
	for _, msg := range messages {
		lengths = append(lengths, len(msg.Message.Payload))
	}
	return lengths
}
