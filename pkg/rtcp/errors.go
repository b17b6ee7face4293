// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import "github.com/pkg/errors"

var (
	// ErrInvalidHeader is returned when a Header count does not fit in 5 bits.
	ErrInvalidHeader = errors.New("rtcp: invalid header")
	// ErrBadVersion is returned when a header carries a version other than 2.
	ErrBadVersion = errors.New("rtcp: invalid packet version")
	// ErrWrongType is returned when a header carries an unregistered packet type.
	ErrWrongType = errors.New("rtcp: wrong packet type")
	// ErrPacketTooShort is returned when a packet holds fewer bytes than its length field.
	ErrPacketTooShort = errors.New("rtcp: packet too short")
	// ErrPacketTooLong is returned when a packet holds more bytes than its length field.
	ErrPacketTooLong = errors.New("rtcp: packet too long")
)
