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

import "github.com/0xsoniclabs/cairostate/fee"

// MessageL1CostInfo is the input for computing the L1 cost of the messages
// sent by a transaction.
type MessageL1CostInfo struct {
	L2ToL1PayloadLengths []int
	MessageSegmentLength int
}

// CalculateMessageL1CostInfo collects the payload lengths of all messages
// sent by the given call trees in order. l1HandlerPayloadSize is the payload
// size of the L1 handler message triggering the transaction, if any. Nil
// call trees are skipped.
func CalculateMessageL1CostInfo(calls []*CallInfo, l1HandlerPayloadSize *int) MessageL1CostInfo {
	var lengths []int
	for _, call := range calls {
		if call != nil {
			lengths = append(lengths, call.L2ToL1PayloadLengths()...)
		}
	}
	return MessageL1CostInfo{
		L2ToL1PayloadLengths: lengths,
		MessageSegmentLength: fee.MessageSegmentLength(lengths, l1HandlerPayloadSize),
	}
}
