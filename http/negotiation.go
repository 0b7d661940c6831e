package http

import (
	"github.com/indigo-web/reply/http/mime"
	"github.com/indigo-web/reply/http/status"
)

// Offer is a representation the handler is able to produce. Handler is called on the
// response if the offer gets picked.
type Offer struct {
	MIME    mime.MIME
	Handler func(*Response)
}

// On is a shorthand for the Offer construction.
func On(m mime.MIME, handler func(*Response)) Offer {
	return Offer{MIME: m, Handler: handler}
}

// Negotiate picks the first offer, whose MIME is (case-insensitively) accepted by the client,
// calls its handler and marks the MIME as the negotiated one. Other handlers aren't called.
// If none of the offers is acceptable, the status becomes 415 Unsupported Media Type.
func (r *Response) Negotiate(offers ...Offer) *Response {
	for _, offer := range offers {
		if !r.accepts(offer.MIME) {
			continue
		}

		if offer.Handler != nil {
			offer.Handler(r)
		}

		r.fields.NegotiatedMediaType = offer.MIME
		return r
	}

	r.logf("reply: none of %d offered types is acceptable", len(offers))
	return r.SetStatus(status.UnsupportedMediaType)
}

func (r *Response) accepts(m mime.MIME) bool {
	for _, requested := range r.fields.RequestedContentTypes {
		if mime.Equal(requested, m) {
			return true
		}
	}

	return false
}
