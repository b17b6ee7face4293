// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

// RawPacket represents an unparsed RTCP packet. It can be used to forward a
// packet without decoding its body.
type RawPacket []byte

var _ Packet = (*RawPacket)(nil)

// Marshal encodes the packet in binary.
func (r RawPacket) Marshal() ([]byte, error) {
	return r, nil
}

// Unmarshal decodes the packet from binary. The header must be valid and the
// length field must cover rawPacket exactly.
func (r *RawPacket) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}

	switch {
	case len(rawPacket) < h.PacketLength():
		return ErrPacketTooShort
	case len(rawPacket) > h.PacketLength():
		return ErrPacketTooLong
	}

	*r = rawPacket

	return nil
}

// Header returns the Header associated with this packet.
func (r RawPacket) Header() (Header, error) {
	var h Header
	if err := h.Unmarshal(r); err != nil {
		return Header{}, err
	}

	return h, nil
}
