// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	headers, err := Headers(realPacket)
	require.NoError(t, err)
	assert.Equal(t, []Header{
		{Count: 1, Type: TypeReceiverReport, Length: 7},
		{Count: 1, Type: TypeSourceDescription, Length: 12},
		{Count: 1, Type: TypeGoodbye, Length: 1},
	}, headers)

	headers, err = Headers(nil)
	require.NoError(t, err)
	assert.Empty(t, headers)
}

func TestHeadersInvalid(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Data      []byte
		WantError error
	}{
		{
			Name:      "truncated last packet",
			Data:      realPacket[:len(realPacket)-2],
			WantError: io.ErrUnexpectedEOF,
		},
		{
			Name:      "garbage after packets",
			Data:      append(append([]byte{}, realPacket...), 0x00),
			WantError: ErrBadVersion,
		},
		{
			Name:      "unknown type in the middle",
			Data:      append(append([]byte{}, realPacket[:32]...), 0x80, 0xc0, 0x00, 0x00),
			WantError: ErrWrongType,
		},
	} {
		headers, err := Headers(test.Data)
		assert.ErrorIs(t, err, test.WantError, "Headers %q", test.Name)
		assert.Nil(t, headers, "Headers %q", test.Name)
	}
}

func TestMarshalCompound(t *testing.T) {
	rr := RawPacket(realPacket[:32])
	sdes := RawPacket(realPacket[32:84])
	bye := RawPacket(realPacket[84:])
	packets := []Packet{&rr, &sdes, &bye}

	data, err := Marshal(packets)
	require.NoError(t, err)
	assert.Equal(t, realPacket, data)

	for i, p := range packets {
		var raw RawPacket
		require.NoError(t, raw.Unmarshal(*p.(*RawPacket)), "packet %d", i)
	}
}

type invalidPacket struct{}

func (invalidPacket) Marshal() ([]byte, error) {
	return nil, ErrInvalidHeader
}

func (invalidPacket) Unmarshal([]byte) error {
	return nil
}

func TestMarshalCompoundError(t *testing.T) {
	bye := RawPacket(realPacket[84:])
	data, err := Marshal([]Packet{&bye, invalidPacket{}})
	assert.ErrorIs(t, err, ErrInvalidHeader)
	assert.Nil(t, data)
}
