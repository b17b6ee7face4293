// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package mux tells RTCP packets apart from the other protocols sharing a socket.
package mux

import (
	"github.com/pion/rtcpheader/pkg/rtcp"
)

// MatchFunc allows custom logic for classifying packets
type MatchFunc func([]byte) bool

// MatchRange is a MatchFunc that accepts packets with the first byte in [lower..upper]
func MatchRange(lower, upper byte) MatchFunc {
	return func(buf []byte) bool {
		if len(buf) < 1 {
			return false
		}
		b := buf[0]
		return b >= lower && b <= upper
	}
}

// MatchFuncs as described in RFC7983
// https://tools.ietf.org/html/rfc7983
//              +----------------+
//              |        [0..3] -+--> forward to STUN
//              |                |
//              |      [16..19] -+--> forward to ZRTP
//              |                |
//  packet -->  |      [20..63] -+--> forward to DTLS
//              |                |
//              |      [64..79] -+--> forward to TURN Channel
//              |                |
//              |    [128..191] -+--> forward to RTP/RTCP
//              +----------------+

// MatchSRTPOrSRTCP is a MatchFunc that accepts packets with the first byte in [128..191]
// as defined in RFC7983
var MatchSRTPOrSRTCP = MatchRange(128, 191)

// RTCP packet types occupy [192..223] of the second byte, see RFC5761 section 4.
func isRTCP(buf []byte) bool {
	// Not long enough to determine RTP/RTCP
	if len(buf) < rtcp.HeaderLength {
		return false
	}

	return buf[1] >= 192 && buf[1] <= 223
}

// MatchSRTP is a MatchFunc that only matches SRTP and not SRTCP
func MatchSRTP(buf []byte) bool {
	return MatchSRTPOrSRTCP(buf) && !isRTCP(buf)
}

// MatchSRTCP is a MatchFunc that only matches SRTCP and not SRTP
func MatchSRTCP(buf []byte) bool {
	return MatchSRTPOrSRTCP(buf) && isRTCP(buf)
}

// MatchRTCPHeader is a MatchFunc that accepts packets starting with a valid
// RTCP header of a registered packet type.
func MatchRTCPHeader(buf []byte) bool {
	var h rtcp.Header
	return h.Unmarshal(buf) == nil
}
