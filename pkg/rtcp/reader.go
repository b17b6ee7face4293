// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"io"

	"github.com/pkg/errors"
)

// A Reader reads packets from an RTCP combined packet.
type Reader struct {
	r io.Reader
}

// NewReader creates a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r}
}

// ReadPacket reads one packet from r.
//
// It returns the parsed packet Header and a byte slice containing the encoded
// packet data (including the header). How the packet data is parsed depends on
// the Type field contained in the Header.
//
// io.EOF is returned only when r is exhausted on a packet boundary.
func (r *Reader) ReadPacket() (header Header, data []byte, err error) {
	// First grab the header
	header, err = ReadHeader(r.r)
	if err != nil {
		return Header{}, nil, err
	}

	rawHeader, err := header.Marshal()
	if err != nil {
		return Header{}, nil, err
	}
	data = make([]byte, header.PacketLength())
	copy(data, rawHeader)

	// Then grab the rest
	if _, err = io.ReadFull(r.r, data[HeaderLength:]); err != nil {
		return Header{}, nil, errors.Wrapf(shortRead(err), "rtcp: reading %s body of %d bytes", header.Type, len(data)-HeaderLength)
	}

	return header, data, nil
}
