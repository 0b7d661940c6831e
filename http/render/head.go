// Package render serializes a response into its HTTP/1.x wire form for transports.
package render

import (
	"strconv"

	"github.com/indigo-web/reply/http"
	"github.com/indigo-web/reply/http/proto"
	"github.com/indigo-web/reply/http/status"
	"github.com/indigo-web/reply/internal/strutil"
	"github.com/indigo-web/reply/kv"
)

// Head appends the status line and the header block of the response, including the empty
// line terminating it. The body is left to the transport. Headers with empty values are
// omitted, as the response always yields some of them. So are headers, which would break
// the field line (containing CR, LF or NUL). The response rejects those already, so they
// can only get here by modifying exposed fields directly.
func Head(buff []byte, protocol proto.Protocol, response *http.Response) []byte {
	buff = appendProtocol(buff, protocol)
	buff = appendStatus(buff, response)

	for _, header := range response.Headers() {
		if len(header.Value) == 0 || !strutil.IsHeaderKey(header.Key) || !strutil.IsHeaderValue(header.Value) {
			continue
		}

		buff = appendHeader(buff, header)
	}

	return crlf(buff)
}

func appendProtocol(buff []byte, protocol proto.Protocol) []byte {
	if protocol == proto.Unknown || protocol == proto.HTTP1 {
		protocol = proto.HTTP11
	}

	buff = append(buff, protocol.String()...)
	return sp(buff)
}

func appendStatus(buff []byte, response *http.Response) []byte {
	fields := response.Expose()
	buff = strconv.AppendUint(buff, uint64(fields.Code), 10)
	buff = sp(buff)

	statusText := fields.Status
	if len(statusText) == 0 {
		statusText = status.Text(fields.Code)
	}

	buff = append(buff, statusText...)
	return crlf(buff)
}

// appendHeader writes a complete header field line including the trailing CRLF.
func appendHeader(buff []byte, header kv.Pair) []byte {
	buff = append(buff, header.Key...)
	buff = append(buff, ':', ' ')
	buff = append(buff, header.Value...)
	return crlf(buff)
}

func sp(buff []byte) []byte {
	return append(buff, ' ')
}

func crlf(buff []byte) []byte {
	return append(buff, '\r', '\n')
}
