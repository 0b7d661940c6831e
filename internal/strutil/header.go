package strutil

// IsHeaderValue reports whether the value can be put into a header field line as is. CR
// and LF would terminate the line early, NUL is rejected by most of the parsers.
func IsHeaderValue(value string) bool {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\r', '\n', 0:
			return false
		}
	}

	return true
}

// IsHeaderKey is like IsHeaderValue, but additionally disallows empty keys, colons and
// whitespaces, as any of them would make the key ambiguous.
func IsHeaderKey(key string) bool {
	if len(key) == 0 {
		return false
	}

	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '\r', '\n', 0, ':', ' ', '\t':
			return false
		}
	}

	return true
}
