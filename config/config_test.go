package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config", false) {
		assert.Fail(t, "zero-value field", field)
	}
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string, nullable bool) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := range a.Value.NumField() {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fieldname := a.Type.Field(field).Name
			isNullable := a.Type.Field(field).Tag.Get("test") == "nullable"
			fields = append(fields, visit(v1, name+"."+fieldname, isNullable)...)
		}

		return fields
	}

	if a.Value.IsZero() && !nullable {
		return []string{name}
	}

	return nil
}

func TestRead(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		cfg, err := Read(strings.NewReader(`
[response]
connection = "keep-alive"

[headers]
prealloc = 16
`))
		require.NoError(t, err)
		require.Equal(t, "keep-alive", cfg.Response.Connection)
		require.Equal(t, 16, cfg.Headers.Prealloc)
		require.Equal(t, Default().Response.ContentType, cfg.Response.ContentType)
		require.Equal(t, Default().Response.CacheControl, cfg.Response.CacheControl)
		require.Equal(t, Default().File.UnknownMIME, cfg.File.UnknownMIME)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Read(strings.NewReader("[response]\nserver = \"reply\"\n"))
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Read(strings.NewReader("[response"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reply.toml")
		require.NoError(t, os.WriteFile(path, []byte("[file]\nunknown_mime = \"application/octet-stream\"\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "application/octet-stream", cfg.File.UnknownMIME)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
