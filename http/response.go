package http

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/indigo-web/reply/config"
	"github.com/indigo-web/reply/http/cookie"
	"github.com/indigo-web/reply/http/date"
	"github.com/indigo-web/reply/http/method"
	"github.com/indigo-web/reply/http/mime"
	"github.com/indigo-web/reply/http/status"
	"github.com/indigo-web/reply/internal/response"
	"github.com/indigo-web/reply/internal/strutil"
	"github.com/indigo-web/reply/kv"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// fixedHeaders is the number of headers, which are always present.
const fixedHeaders = 6

// Logger receives notes about soft failures, like a file that wasn't found or a cookie
// that couldn't be encoded. *log.Logger implements it.
type Logger interface {
	Printf(format string, v ...any)
}

// Response accumulates everything a handler wants to reply with. It is owned by a single
// request and must not be shared between goroutines.
type Response struct {
	cfg    *config.Config
	fields *response.Fields
	mimes  mime.Lookup
	clock  func() time.Time
	logger Logger
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and other defaults taken from the config. Passing nil means config.Default().
func NewResponse(cfg *config.Config) *Response {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Response{
		cfg:    cfg,
		fields: response.New(cfg),
		mimes:  mime.System,
		clock:  time.Now,
	}
}

// MIMELookup replaces the extension-to-MIME database, consulted by File.
func (r *Response) MIMELookup(lookup mime.Lookup) *Response {
	r.mimes = lookup
	return r
}

// Clock replaces the time source of the Date header.
func (r *Response) Clock(clock func() time.Time) *Response {
	r.clock = clock
	return r
}

// Logger sets a logger for soft failures. By default, nothing is logged.
func (r *Response) Logger(logger Logger) *Response {
	r.logger = logger
	return r
}

// SetStatus sets the response code and its description. If the description is omitted,
// the well-known one is used. Codes out of the [100, 599] range are ignored.
func (r *Response) SetStatus(code status.Code, description ...status.Status) *Response {
	if !status.Valid(code) {
		r.logf("reply: ignoring invalid status code %d", code)
		return r
	}

	r.fields.Code = code
	if len(description) > 0 {
		r.fields.Status = description[0]
	} else {
		r.fields.Status = status.Text(code)
	}

	return r
}

// Redirect sets the Location and the status code, which is 302 Found by default.
// The url isn't validated, except that a value breaking the header line (containing CR, LF
// or NUL) leaves both the status and the Location untouched.
func (r *Response) Redirect(url string, code ...status.Code) *Response {
	if !r.safe("Location", url) {
		return r
	}

	redirect := status.Found
	if len(code) > 0 {
		redirect = code[0]
	}

	r.SetStatus(redirect)
	r.fields.Location = url
	return r
}

// ETag sets the Etag header value.
func (r *Response) ETag(value string) *Response {
	if r.safe("Etag", value) {
		r.fields.ETag = value
	}

	return r
}

// Location sets the Location header value without touching the status.
func (r *Response) Location(url string) *Response {
	if r.safe("Location", url) {
		r.fields.Location = url
	}

	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	if r.safe("Content-Type", value) {
		r.fields.ContentType = value
	}

	return r
}

// Connection sets a custom Connection header value.
func (r *Response) Connection(value string) *Response {
	if r.safe("Connection", value) {
		r.fields.Connection = value
	}

	return r
}

// CacheControl sets a custom Cache-Control header value.
func (r *Response) CacheControl(value string) *Response {
	if r.safe("Cache-Control", value) {
		r.fields.CacheControl = value
	}

	return r
}

// OverrideNegotiation tells the transport to skip its own content negotiation.
func (r *Response) OverrideNegotiation(flag bool) *Response {
	r.fields.OverrideNegotiation = flag
	return r
}

// Accept sets the types the client accepts, in the order of its preference. It is meant
// to be called by the request layer before the handler runs.
func (r *Response) Accept(types ...string) *Response {
	r.fields.RequestedContentTypes = append(r.fields.RequestedContentTypes[:0], types...)
	return r
}

// Header sets a raw header, overriding the previous value of the same key. Empty values
// are silently dropped and don't remove already set ones either. Keys and values, which
// would break the header line, are dropped as well.
func (r *Response) Header(key, value string) *Response {
	if len(value) == 0 {
		return r
	}

	if !strutil.IsHeaderKey(key) {
		r.logf("reply: dropping header with malformed key %q", key)
		return r
	}

	if r.safe(key, value) {
		r.fields.Headers.Set(key, value)
	}

	return r
}

// AllowedMethods sets the Allow header. If no known methods are passed, the previous
// value is kept.
func (r *Response) AllowedMethods(methods ...method.Method) *Response {
	if allow := method.Join(methods...); len(allow) > 0 {
		r.fields.Allow = allow
		r.fields.Headers.Set("Allow", allow)
	}

	return r
}

// Cookie adds cookies. They'll be later rendered as a set of Set-Cookie headers. A cookie
// with an already presented name replaces the previous one.
func (r *Response) Cookie(cookies ...cookie.Cookie) *Response {
outer:
	for _, c := range cookies {
		for i := range r.fields.Cookies {
			if r.fields.Cookies[i].Name == c.Name {
				r.fields.Cookies[i] = c
				continue outer
			}
		}

		r.fields.Cookies = append(r.fields.Cookies, c)
	}

	return r
}

// File sets the response up to stream the file at the path. The content type is derived
// from the file extension, unless passed explicitly. Content-Length and Last-Modified are
// taken from the file at the moment of the call. If the path doesn't exist or is a
// directory, the status becomes 404 Not Found and nothing else changes. An explicit content
// type breaking the header line is ignored in favour of the derived one.
func (r *Response) File(path string, contentType ...mime.MIME) *Response {
	abspath, err := filepath.Abs(path)
	if err != nil {
		r.logf("reply: resolve %q: %s", path, err)
		return r.SetStatus(status.NotFound)
	}

	stat, err := os.Stat(abspath)
	if err != nil || stat.IsDir() {
		r.logf("reply: no file to serve at %q", abspath)
		return r.SetStatus(status.NotFound)
	}

	explicit := mime.Pick(contentType)
	if !r.safe("Content-Type", explicit) {
		explicit = mime.Any
	}

	r.fields.Filepath = abspath
	r.fields.ContentType = r.fileMIME(abspath, explicit)
	r.fields.ContentLength = stat.Size()
	r.fields.LastModified = stat.ModTime()

	return r
}

func (r *Response) fileMIME(path string, contentType mime.MIME) mime.MIME {
	if !mime.IsAny(contentType) {
		return contentType
	}

	ext := filepath.Ext(path)
	switch {
	case strcomp.EqualFold(ext, ".css"):
		return mime.CSS
	case strcomp.EqualFold(ext, ".js"):
		return mime.JavaScript
	}

	if r.mimes != nil {
		if m := r.mimes.Lookup(ext); len(m) > 0 {
			return m
		}
	}

	return r.cfg.File.UnknownMIME
}

// Send sets the body. If a content type is passed and isn't the wildcard, it is considered
// the negotiated one.
func (r *Response) Send(body any, contentType ...mime.MIME) *Response {
	r.fields.Body = body
	if m := mime.Pick(contentType); !mime.IsAny(m) {
		r.fields.NegotiatedMediaType = m
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	return r.Send(body)
}

// TryJSON serializes the model and sends it as application/json.
func (r *Response) TryJSON(model any) (*Response, error) {
	body, err := json.ConfigCompatibleWithStandardLibrary.Marshal(model)
	if err != nil {
		return r, err
	}

	return r.ContentType(mime.JSON).Send(body, mime.JSON), nil
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed, error code will be automatically set. Custom
// codes can be passed, however only first will be used. By default, the error is
// status.ErrInternalServerError
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return r.SetStatus(httpErr.Code)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		// peek the first, ignore the rest
		c = code[0]
	}

	return r.
		SetStatus(c).
		String(err.Error())
}

// Headers builds the header set of the response. It is recomputed on every call, so the
// Date header always reflects the moment of the call. The order is fixed: Etag, Location,
// Content-Type, Connection, Date and Cache-Control, which are always presented even if
// empty, then raw headers in insertion order, Content-Length and Last-Modified if known,
// and Set-Cookie for every cookie. Cookies that can't be encoded are skipped.
func (r *Response) Headers() []kv.Pair {
	f := r.fields
	headers := make([]kv.Pair, 0, fixedHeaders+f.Headers.Len()+2+len(f.Cookies))
	headers = append(headers,
		kv.Pair{Key: "Etag", Value: f.ETag},
		kv.Pair{Key: "Location", Value: f.Location},
		kv.Pair{Key: "Content-Type", Value: f.ContentType},
		kv.Pair{Key: "Connection", Value: f.Connection},
		kv.Pair{Key: "Date", Value: date.Format(r.clock())},
		kv.Pair{Key: "Cache-Control", Value: f.CacheControl},
	)
	headers = append(headers, f.Headers.Expose()...)

	if f.ContentLength >= 0 {
		headers = append(headers, kv.Pair{
			Key:   "Content-Length",
			Value: strconv.FormatInt(f.ContentLength, 10),
		})
	}

	if !f.LastModified.IsZero() {
		headers = append(headers, kv.Pair{
			Key:   "Last-Modified",
			Value: date.Format(f.LastModified),
		})
	}

	for _, c := range f.Cookies {
		value, err := cookie.Encode(c)
		if err != nil {
			r.logf("reply: dropping cookie %q: %s", c.Name, err)
			continue
		}

		headers = append(headers, kv.Pair{Key: "Set-Cookie", Value: value})
	}

	return headers
}

// Expose returns the underlying fields. Used mostly by transports.
func (r *Response) Expose() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields.Clear(r.cfg)
	return r
}

// safe reports whether the value can be emitted as the header's value, logging it otherwise.
func (r *Response) safe(key, value string) bool {
	if strutil.IsHeaderValue(value) {
		return true
	}

	r.logf("reply: dropping %s value %q: contains CR, LF or NUL", key, value)
	return false
}

func (r *Response) logf(format string, v ...any) {
	if r.logger != nil {
		r.logger.Printf(format, v...)
	}
}
