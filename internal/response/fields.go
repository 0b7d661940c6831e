package response

import (
	"time"

	"github.com/indigo-web/reply/config"
	"github.com/indigo-web/reply/http/cookie"
	"github.com/indigo-web/reply/http/mime"
	"github.com/indigo-web/reply/http/status"
	"github.com/indigo-web/reply/kv"
)

// Fields is the raw state behind http.Response. Transports read it, but must never modify it.
type Fields struct {
	Code     status.Code
	Status   status.Status
	ETag     string
	Location string
	// Allow is the comma-separated list of allowed methods. It is emitted as a raw header.
	Allow       string
	ContentType mime.MIME
	// ContentLength is -1 unless known.
	ContentLength int64
	// LastModified is zero unless known.
	LastModified time.Time
	Connection   string
	CacheControl string
	Headers      *kv.Storage
	Cookies      []cookie.Cookie
	// RequestedContentTypes are the types the client accepts, in its order of preference.
	RequestedContentTypes []string
	NegotiatedMediaType   mime.MIME
	// Filepath is the absolute path of a file to be streamed as the body.
	Filepath string
	// Body is an opaque payload, set by the handler. Its serialization is up to the transport.
	Body                any
	OverrideNegotiation bool
}

func New(cfg *config.Config) *Fields {
	f := &Fields{
		Headers: kv.NewPrealloc(cfg.Headers.Prealloc),
		Cookies: make([]cookie.Cookie, 0, cfg.Headers.CookiesPrealloc),
	}
	f.Clear(cfg)

	return f
}

// Clear resets every field to its default, keeping the allocated storages.
func (f *Fields) Clear(cfg *config.Config) {
	f.Code = status.OK
	f.Status = status.Text(status.OK)
	f.ETag = ""
	f.Location = ""
	f.Allow = ""
	f.ContentType = cfg.Response.ContentType
	f.ContentLength = -1
	f.LastModified = time.Time{}
	f.Connection = cfg.Response.Connection
	f.CacheControl = cfg.Response.CacheControl
	f.Headers.Clear()
	clear(f.Cookies)
	f.Cookies = f.Cookies[:0]
	f.RequestedContentTypes = f.RequestedContentTypes[:0]
	f.NegotiatedMediaType = ""
	f.Filepath = ""
	f.Body = nil
	f.OverrideNegotiation = false
}
