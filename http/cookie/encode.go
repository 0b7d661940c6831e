package cookie

import (
	"errors"
	"strconv"

	"github.com/indigo-web/reply/http/date"
)

var (
	ErrBadName      = errors.New("cookie name is not a valid token")
	ErrBadValue     = errors.New("cookie value contains disallowed characters")
	ErrBadAttribute = errors.New("cookie attribute contains disallowed characters")
)

// Encode renders the cookie into a Set-Cookie header value. It is strict: a name must
// be a token, a value must consist of cookie-octets (optionally wrapped in a single pair
// of double quotes, which are kept) and attributes must contain neither semicolons nor
// control characters. Nothing is escaped, violations are reported instead.
func Encode(c Cookie) (string, error) {
	buff, err := Append(make([]byte, 0, 64), c)
	return string(buff), err
}

// Append works like Encode, but appends the encoded cookie to buff. On error, buff
// is returned unchanged.
func Append(buff []byte, c Cookie) ([]byte, error) {
	if err := validate(c); err != nil {
		return buff, err
	}

	buff = append(buff, c.Name...)
	buff = append(buff, '=')
	buff = append(buff, c.Value...)

	if len(c.Path) > 0 {
		buff = append(buff, "; Path="...)
		buff = append(buff, c.Path...)
	}

	if len(c.Domain) > 0 {
		buff = append(buff, "; Domain="...)
		buff = append(buff, c.Domain...)
	}

	if !c.Expires.IsZero() {
		buff = append(buff, "; Expires="...)
		buff = date.Append(buff, c.Expires)
	}

	if c.MaxAge != 0 {
		buff = append(buff, "; Max-Age="...)
		buff = strconv.AppendInt(buff, int64(max(c.MaxAge, 0)), 10)
	}

	if len(c.SameSite) > 0 {
		buff = append(buff, "; SameSite="...)
		buff = append(buff, c.SameSite...)
	}

	if c.Secure {
		buff = append(buff, "; Secure"...)
	}

	if c.HttpOnly {
		buff = append(buff, "; HttpOnly"...)
	}

	return buff, nil
}

func validate(c Cookie) error {
	if !isToken(c.Name) {
		return ErrBadName
	}

	if !isValue(c.Value) {
		return ErrBadValue
	}

	for _, attr := range [...]string{c.Path, c.Domain, c.SameSite} {
		if !isAttributeValue(attr) {
			return ErrBadAttribute
		}
	}

	return nil
}

func isToken(str string) bool {
	if len(str) == 0 {
		return false
	}

	for i := 0; i < len(str); i++ {
		if !tokenChars[str[i]] {
			return false
		}
	}

	return true
}

func isValue(str string) bool {
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	for i := 0; i < len(str); i++ {
		if !octetChars[str[i]] {
			return false
		}
	}

	return true
}

func isAttributeValue(str string) bool {
	for i := 0; i < len(str); i++ {
		if c := str[i]; c == ';' || c < 0x20 || c == 0x7f {
			return false
		}
	}

	return true
}

// tokenChars marks bytes allowed in a token (RFC 9110, 5.6.2).
var tokenChars = func() (lut [256]bool) {
	for c := 0x21; c < 0x7f; c++ {
		lut[c] = true
	}

	for _, c := range []byte(`()<>@,;:\"/[]?={}`) {
		lut[c] = false
	}

	return lut
}()

// octetChars marks cookie-octets (RFC 6265, 4.1.1): visible US-ASCII excluding
// DQUOTE, comma, semicolon and backslash.
var octetChars = func() (lut [256]bool) {
	for c := 0x21; c < 0x7f; c++ {
		lut[c] = true
	}

	for _, c := range []byte(`",;\`) {
		lut[c] = false
	}

	return lut
}()
