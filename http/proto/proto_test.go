package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtocol(t *testing.T) {
	require.Equal(t, "HTTP/1.0", HTTP10.String())
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Empty(t, Unknown.String())
	require.Empty(t, HTTP1.String())
}
