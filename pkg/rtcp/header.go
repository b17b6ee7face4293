// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"bytes"
	"encoding/binary"
	"io"
)

// PacketType specifies the type of an RTCP packet.
//
// The values of PacketType are not the wire codes, use Code and
// PacketTypeFromCode to convert.
type PacketType uint8

// RTCP packet types registered with IANA. See: https://www.iana.org/assignments/rtp-parameters/rtp-parameters.xhtml#rtp-parameters-4
const (
	TypeUnsupported               PacketType = iota
	TypeSenderReport                         // RFC 3550, 6.4.1
	TypeReceiverReport                       // RFC 3550, 6.4.2
	TypeSourceDescription                    // RFC 3550, 6.5
	TypeGoodbye                              // RFC 3550, 6.6
	TypeApplicationDefined                   // RFC 3550, 6.7 (unimplemented)
	TypeTransportSpecificFeedback            // RFC 4585, 6.1
	TypePayloadSpecificFeedback              // RFC 4585, 6.3
)

// Transport and Payload specific feedback messages overload the count field to act as a message type.
const (
	FormatPLI  uint8 = 1
	FormatSLI  uint8 = 2
	FormatTLN  uint8 = 1
	FormatRRR  uint8 = 5
	FormatREMB uint8 = 15
)

var packetTypeCodes = [...]uint8{
	TypeUnsupported:               0,
	TypeSenderReport:              200,
	TypeReceiverReport:            201,
	TypeSourceDescription:         202,
	TypeGoodbye:                   203,
	TypeApplicationDefined:        204,
	TypeTransportSpecificFeedback: 205,
	TypePayloadSpecificFeedback:   206,
}

var packetTypeNames = [...]string{
	TypeUnsupported:               "Unsupported",
	TypeSenderReport:              "SR",
	TypeReceiverReport:            "RR",
	TypeSourceDescription:         "SDES",
	TypeGoodbye:                   "BYE",
	TypeApplicationDefined:        "APP",
	TypeTransportSpecificFeedback: "TSFB",
	TypePayloadSpecificFeedback:   "PSFB",
}

// PacketTypeFromCode returns the PacketType registered for the wire code.
// Codes that are not registered yield TypeUnsupported.
func PacketTypeFromCode(code uint8) PacketType {
	if code == packetTypeCodes[TypeUnsupported] {
		return TypeUnsupported
	}
	for t, c := range packetTypeCodes {
		if c == code {
			return PacketType(t)
		}
	}

	return TypeUnsupported
}

// Code returns the wire code of the PacketType.
func (t PacketType) Code() uint8 {
	if int(t) >= len(packetTypeCodes) {
		return packetTypeCodes[TypeUnsupported]
	}

	return packetTypeCodes[t]
}

func (t PacketType) String() string {
	if int(t) >= len(packetTypeNames) {
		return packetTypeNames[TypeUnsupported]
	}

	return packetTypeNames[t]
}

// Version is the RTP version carried in every RTCP header.
const Version = 2

// HeaderLength is the size of the common header in bytes.
const HeaderLength = 4

const (
	versionShift = 6
	versionMask  = 0x3
	paddingShift = 5
	paddingMask  = 0x1
	countShift   = 0
	countMask    = 0x1f
	countMax     = (1 << 5) - 1
)

// A Header is the common header shared by all RTCP packets.
type Header struct {
	// If the padding bit is set, this individual RTCP packet contains
	// some additional padding octets at the end which are not part of
	// the control information but are included in the length field.
	Padding bool
	// The number of reception reports, sources contained or FMT in this packet (depending on the Type).
	// Only 0..31 fits on the wire; larger values are rejected by Marshal and MarshalTo, not on assignment.
	Count uint8
	// The RTCP packet type for this packet
	Type PacketType
	// The length of this RTCP packet in 32-bit words minus one,
	// including the header and any padding.
	Length uint16
}

// Marshal encodes the Header in binary.
func (h Header) Marshal() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderLength))
	if err := h.MarshalTo(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalTo writes the binary form of the Header to w. Nothing is written
// if the Header is invalid.
func (h Header) MarshalTo(w io.Writer) error {
	/*
	 *  0                   1                   2                   3
	 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	 * |V=2|P|    RC   |   PT=SR=200   |             length            |
	 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	 */
	if h.Count > countMax {
		return ErrInvalidHeader
	}

	var rawHeader [HeaderLength]byte
	rawHeader[0] = Version << versionShift
	if h.Padding {
		rawHeader[0] |= 1 << paddingShift
	}
	rawHeader[0] |= h.Count << countShift

	rawHeader[1] = h.Type.Code()

	binary.BigEndian.PutUint16(rawHeader[2:], h.Length)

	n, err := w.Write(rawHeader[:])
	if err != nil {
		return err
	}
	if n != HeaderLength {
		return io.ErrShortWrite
	}

	return nil
}

// ReadHeader decodes a Header from r.
//
// The version is checked before the second byte is read and the type before
// the length, so r may have been partially consumed when an error is returned.
func ReadHeader(r io.Reader) (Header, error) {
	/*
	 *  0                   1                   2                   3
	 *  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	 * |V=2|P|    RC   |      PT       |             length            |
	 * +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	 */
	var rawHeader [HeaderLength]byte

	if _, err := io.ReadFull(r, rawHeader[0:1]); err != nil {
		return Header{}, err
	}
	if rawHeader[0]>>versionShift&versionMask != Version {
		return Header{}, ErrBadVersion
	}

	if _, err := io.ReadFull(r, rawHeader[1:2]); err != nil {
		return Header{}, shortRead(err)
	}
	packetType := PacketTypeFromCode(rawHeader[1])
	if packetType == TypeUnsupported {
		return Header{}, ErrWrongType
	}

	if _, err := io.ReadFull(r, rawHeader[2:]); err != nil {
		return Header{}, shortRead(err)
	}

	return Header{
		Padding: rawHeader[0]>>paddingShift&paddingMask > 0,
		Count:   rawHeader[0] >> countShift & countMask,
		Type:    packetType,
		Length:  binary.BigEndian.Uint16(rawHeader[2:]),
	}, nil
}

// Unmarshal decodes the Header from binary. h is left untouched on error.
func (h *Header) Unmarshal(rawPacket []byte) error {
	header, err := ReadHeader(bytes.NewReader(rawPacket))
	if err != nil {
		return err
	}
	*h = header

	return nil
}

// PacketLength returns the size in bytes of the packet this Header starts,
// header and padding included.
func (h Header) PacketLength() int {
	return (int(h.Length) + 1) * 4
}

// An EOF after the first byte means the header was cut short.
func shortRead(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
