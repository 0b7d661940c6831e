package mime

import (
	stdmime "mime"
	"strings"
)

// Lookup resolves a file extension (with the leading dot, e.g. ".png") into a MIME. An
// empty string is returned if the extension is unknown.
type Lookup interface {
	Lookup(ext string) MIME
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(ext string) MIME

func (l LookupFunc) Lookup(ext string) MIME {
	return l(ext)
}

// Table is a static Lookup. Keys must be lower-cased, lookups are case-insensitive.
type Table map[string]MIME

func (t Table) Lookup(ext string) MIME {
	return t[strings.ToLower(ext)]
}

// Chain tries every lookup in order and returns the first non-empty result.
func Chain(lookups ...Lookup) Lookup {
	return LookupFunc(func(ext string) MIME {
		for _, l := range lookups {
			if m := l.Lookup(ext); len(m) > 0 {
				return m
			}
		}

		return ""
	})
}

// System consults the Extension table first and the host's MIME database after. Parameters
// (like charset) the host attaches are dropped.
var System Lookup = Chain(Extension, LookupFunc(host))

func host(ext string) MIME {
	if len(ext) == 0 {
		return ""
	}

	return Strip(stdmime.TypeByExtension(ext))
}
