// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package rtcp implements the common header of RTCP packets (RFC 3550, RFC 4585)
// and splits compound packets on header boundaries.
package rtcp

import (
	"bytes"
	"io"
)

// Packet represents an RTCP packet, a protocol used for out-of-band statistics and control information for an RTP session
type Packet interface {
	Marshal() ([]byte, error)
	Unmarshal(rawPacket []byte) error
}

// Marshal serializes packets into a compound RTCP packet.
func Marshal(packets []Packet) ([]byte, error) {
	out := make([]byte, 0)
	for _, p := range packets {
		data, err := p.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}

	return out, nil
}

// Headers returns the header of every packet in a compound RTCP packet.
// It fails on the first invalid header or truncated packet.
func Headers(rawData []byte) ([]Header, error) {
	r := NewReader(bytes.NewReader(rawData))

	var headers []Header
	for {
		header, _, err := r.ReadPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}

	return headers, nil
}
