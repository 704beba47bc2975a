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

const (
	// L2ToL1MsgHeaderSize is the number of felts preceding the payload of a
	// message sent to L1: from address, to address and payload size.
	L2ToL1MsgHeaderSize = 3

	// L1ToL2MsgHeaderSize is the number of felts preceding the payload of a
	// message consumed by an L1 handler: from address, to address, nonce,
	// selector and payload size.
	L1ToL2MsgHeaderSize = 5
)

// MessageSegmentLength returns the number of felts needed to publish the
// given L2 to L1 messages and, if present, the payload of the L1 handler
// message which triggered the transaction.
func MessageSegmentLength(l2ToL1PayloadLengths []int, l1HandlerPayloadSize *int) int {
	res := 0
	for _, length := range l2ToL1PayloadLengths {
		res += L2ToL1MsgHeaderSize + length
	}
	if l1HandlerPayloadSize != nil {
		res += L1ToL2MsgHeaderSize + *l1HandlerPayloadSize
	}
	return res
}
