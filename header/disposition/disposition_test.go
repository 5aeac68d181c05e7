package disposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrowdHailer/gleam-http/header/disposition"
)

func TestParse_FormData(t *testing.T) {
	d, err := disposition.Parse(`form-data; name="file"; filename=a.txt`)
	require.NoError(t, err)
	assert.Equal(t, "form-data", d.Type)
	assert.Equal(t, []disposition.Parameter{
		{Name: "name", Value: "file"},
		{Name: "filename", Value: "a.txt"},
	}, d.Parameters)
}

func TestParse_QuotedEscape(t *testing.T) {
	d, err := disposition.Parse(`x; p="a\"b"`)
	require.NoError(t, err)
	assert.Equal(t, "x", d.Type)
	assert.Equal(t, []disposition.Parameter{{Name: "p", Value: `a"b`}}, d.Parameters)
}

func TestParse_TypeOnly(t *testing.T) {
	d, err := disposition.Parse("inline")
	require.NoError(t, err)
	assert.Equal(t, "inline", d.Type)
	assert.Empty(t, d.Parameters)
}

func TestParse_TypeCaseFolded(t *testing.T) {
	d, err := disposition.Parse("ATTACHMENT; Name=x")
	require.NoError(t, err)
	assert.Equal(t, "attachment", d.Type)
	assert.Equal(t, "name", d.Parameters[0].Name)
}

func TestParse_UnterminatedQuote(t *testing.T) {
	_, err := disposition.Parse(`x; p="unterminated`)
	assert.ErrorIs(t, err, disposition.ErrUnterminatedQuote)
}

func TestParse_MissingEquals(t *testing.T) {
	_, err := disposition.Parse("x; p")
	assert.ErrorIs(t, err, disposition.ErrMissingEquals)
}

func TestParse_RoundtripTokensOnly(t *testing.T) {
	h := `attachment; filename=report.pdf; size=1024`
	d1, err := disposition.Parse(h)
	require.NoError(t, err)

	d2, err := disposition.Parse(d1.String())
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestParameter_Lookup(t *testing.T) {
	d, err := disposition.Parse(`form-data; name="file"`)
	require.NoError(t, err)

	v, ok := d.Parameter("NAME")
	assert.True(t, ok)
	assert.Equal(t, "file", v)

	_, ok = d.Parameter("missing")
	assert.False(t, ok)
}
