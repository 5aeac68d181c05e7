package httpenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrowdHailer/gleam-http/httpenum"
)

func TestParseMethod(t *testing.T) {
	m, err := httpenum.ParseMethod("GET")
	require.NoError(t, err)
	assert.Equal(t, httpenum.Get, m)
	assert.Equal(t, "get", m.String())
}

func TestParseMethod_CaseInsensitive(t *testing.T) {
	m, err := httpenum.ParseMethod("PoSt")
	require.NoError(t, err)
	assert.Equal(t, httpenum.Post, m)
}

func TestParseMethod_Unknown(t *testing.T) {
	_, err := httpenum.ParseMethod("FROBNICATE")
	assert.ErrorIs(t, err, httpenum.ErrUnknownMethod)
}

func TestParseScheme(t *testing.T) {
	s, err := httpenum.ParseScheme("HTTPS")
	require.NoError(t, err)
	assert.Equal(t, httpenum.Https, s)
	assert.Equal(t, "https", s.String())
}

func TestParseScheme_Unknown(t *testing.T) {
	_, err := httpenum.ParseScheme("ftp")
	assert.ErrorIs(t, err, httpenum.ErrUnknownScheme)
}
