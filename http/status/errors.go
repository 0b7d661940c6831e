package status

// HTTPError is an error that carries a status code. Passing one to Response.Error sets the
// code without touching the body.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrMethodNotAllowed     = NewError(MethodNotAllowed, "method not allowed")
	ErrNotAcceptable        = NewError(NotAcceptable, "not acceptable")
	ErrUnsupportedMediaType = NewError(UnsupportedMediaType, "unsupported media type")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
	ErrNotImplemented       = NewError(NotImplemented, "not implemented")
	ErrServiceUnavailable   = NewError(ServiceUnavailable, "service unavailable")
)
