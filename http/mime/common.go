package mime

import (
	"github.com/indigo-web/utils/strcomp"

	"github.com/indigo-web/reply/internal/strutil"
)

type MIME = string

const (
	// Any is the wildcard, meaning "no preference". Passing it wherever an optional MIME
	// is accepted is the same as passing nothing.
	Any MIME = "*/*"
	// Unknown is used for files whose extension couldn't be resolved.
	Unknown MIME = "application/unknown"

	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	JSON           MIME = "application/json"
	YAML           MIME = "application/yaml"
	PDF            MIME = "application/pdf"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	Multipart      MIME = "multipart/form-data"
	ZIP            MIME = "application/zip"
	GZIP           MIME = "application/gzip"
	ZLIB           MIME = "application/zlib"
	ZSTD           MIME = "application/zstd"
	SQL            MIME = "application/sql"
	TZIF           MIME = "application/tzif"
	XFDF           MIME = "application/vnd.adobe.xfdf"
	AVIF           MIME = "image/avif"
	CSS            MIME = "text/css"
	GIF            MIME = "image/gif"
	JPEG           MIME = "image/jpeg"
	PNG            MIME = "image/png"
	SVG            MIME = "image/svg+xml"
	ICO            MIME = "image/vnd.microsoft.icon"
	WEBP           MIME = "image/webp"
	JavaScript     MIME = "application/javascript"
	WASM           MIME = "application/wasm"
)

// Pick returns the first element of an optional MIME argument, falling back to Any.
func Pick(optional []MIME) MIME {
	if len(optional) == 0 || len(optional[0]) == 0 {
		return Any
	}

	return optional[0]
}

// IsAny reports whether the value is the wildcard.
func IsAny(value MIME) bool {
	return value == Any
}

// Equal compares two MIMEs case-insensitively. Parameters are compared as well,
// use Strip in order to ignore them.
func Equal(a, b MIME) bool {
	return strcomp.EqualFold(a, b)
}

// Strip cuts off parameters, if any.
func Strip(value MIME) MIME {
	value, _ = strutil.CutHeader(value)
	return strutil.RStripWS(value)
}
