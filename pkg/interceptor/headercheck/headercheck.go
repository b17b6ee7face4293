// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package headercheck provides an interceptor that validates the common header
// of every packet in incoming RTCP batches.
package headercheck

import (
	"sync/atomic"

	"github.com/pion/interceptor"
	"github.com/pion/logging"
	"github.com/pkg/errors"

	"github.com/pion/rtcpheader/internal/mux"
	"github.com/pion/rtcpheader/pkg/rtcp"
)

var errNotRTCP = errors.New("headercheck: batch is not RTCP")

type attributeKey int

const headersKey attributeKey = iota

// InterceptorFactory is a interceptor.Factory for a header check Interceptor.
type InterceptorFactory struct {
	opts []Option
}

// NewInterceptor returns a new InterceptorFactory.
func NewInterceptor(opts ...Option) (*InterceptorFactory, error) {
	return &InterceptorFactory{opts: opts}, nil
}

// NewInterceptor constructs a new header check Interceptor.
func (f *InterceptorFactory) NewInterceptor(_ string) (interceptor.Interceptor, error) {
	i := &Interceptor{
		loggerFactory: logging.NewDefaultLoggerFactory(),
	}

	for _, opt := range f.opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}

	i.log = i.loggerFactory.NewLogger("rtcp_header_check")

	return i, nil
}

// Interceptor validates incoming RTCP batches and exposes their headers
// through the read attributes.
type Interceptor struct {
	interceptor.NoOp
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
	dropInvalid   bool

	accepted atomic.Uint64
	invalid  atomic.Uint64
}

// Stats counts the batches seen by an Interceptor.
type Stats struct {
	Accepted uint64
	Invalid  uint64
}

// Stats returns the number of accepted and invalid batches read so far.
func (i *Interceptor) Stats() Stats {
	return Stats{
		Accepted: i.accepted.Load(),
		Invalid:  i.invalid.Load(),
	}
}

// BindRTCPReader lets you modify any incoming RTCP packets. It is called once per sender/receiver, however this might
// change in the future. The returned method will be called once per packet batch.
func (i *Interceptor) BindRTCPReader(reader interceptor.RTCPReader) interceptor.RTCPReader {
	return interceptor.RTCPReaderFunc(func(b []byte, a interceptor.Attributes) (int, interceptor.Attributes, error) {
		for {
			n, attr, err := reader.Read(b, a)
			if err != nil {
				return n, attr, err
			}

			headers, err := check(b[:n])
			if err == nil {
				i.accepted.Add(1)
				if attr == nil {
					attr = make(interceptor.Attributes)
				}
				attr.Set(headersKey, headers)

				return n, attr, nil
			}

			i.invalid.Add(1)
			i.log.Debugf("invalid RTCP batch of %d bytes: %v", n, err)
			if !i.dropInvalid {
				return 0, nil, err
			}
		}
	})
}

func check(buf []byte) ([]rtcp.Header, error) {
	if !mux.MatchSRTCP(buf) {
		return nil, errNotRTCP
	}

	return rtcp.Headers(buf)
}

// HeadersFromAttributes returns the headers the Interceptor decoded for a batch.
func HeadersFromAttributes(a interceptor.Attributes) ([]rtcp.Header, bool) {
	headers, ok := a.Get(headersKey).([]rtcp.Header)

	return headers, ok
}
