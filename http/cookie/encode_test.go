package cookie

import (
	"testing"
	"time"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("name and value", func(t *testing.T) {
		value := uniuri.New()
		str, err := Encode(New("session", value))
		require.NoError(t, err)
		require.Equal(t, "session="+value, str)
	})

	t.Run("empty value", func(t *testing.T) {
		str, err := Encode(New("flag", ""))
		require.NoError(t, err)
		require.Equal(t, "flag=", str)
	})

	t.Run("quoted value", func(t *testing.T) {
		str, err := Encode(New("q", `"hello"`))
		require.NoError(t, err)
		require.Equal(t, `q="hello"`, str)
	})

	t.Run("all attributes", func(t *testing.T) {
		c := Build("id", "42").
			Path("/").
			Domain("example.com").
			Expires(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)).
			MaxAge(3600).
			SameSite(SameSiteStrict).
			Secure(true).
			HttpOnly(true).
			Cookie()

		str, err := Encode(c)
		require.NoError(t, err)
		require.Equal(t,
			"id=42; Path=/; Domain=example.com; Expires=Fri, 01 Jan 2021 00:00:00 GMT; "+
				"Max-Age=3600; SameSite=Strict; Secure; HttpOnly",
			str,
		)
	})

	t.Run("expire", func(t *testing.T) {
		str, err := Encode(Expire("session"))
		require.NoError(t, err)
		require.Equal(t, "session=; Max-Age=0", str)
	})

	t.Run("bad name", func(t *testing.T) {
		for _, name := range []string{"", "has space", "semi;colon", "a=b", "tab\t", "ünicode"} {
			_, err := Encode(New(name, "value"))
			require.ErrorIs(t, err, ErrBadName, name)
		}
	})

	t.Run("bad value", func(t *testing.T) {
		for _, value := range []string{"has space", "semi;colon", "com,ma", `back\slash`, `"unbalanced`, "\x01"} {
			_, err := Encode(New("name", value))
			require.ErrorIs(t, err, ErrBadValue, value)
		}
	})

	t.Run("bad attribute", func(t *testing.T) {
		_, err := Encode(Build("name", "value").Path("/a;b").Cookie())
		require.ErrorIs(t, err, ErrBadAttribute)

		_, err = Encode(Build("name", "value").Domain("evil\r\n.com").Cookie())
		require.ErrorIs(t, err, ErrBadAttribute)
	})

	t.Run("append keeps buffer on error", func(t *testing.T) {
		buff, err := Append([]byte("prefix"), New("", "v"))
		require.Error(t, err)
		require.Equal(t, "prefix", string(buff))
	})
}
