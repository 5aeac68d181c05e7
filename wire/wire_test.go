package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrowdHailer/gleam-http/wire"
)

func TestParseHeaders_SinglePartNoPreamble(t *testing.T) {
	input := []byte("--X\r\nA: 1\r\n\r\nbody\r\n--X--")

	res, err := wire.ParseHeaders(input, "X")
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, []wire.Header{{Name: "a", Value: "1"}}, res.Headers)
	assert.Equal(t, "body\r\n--X--", string(res.Remaining))

	body, err := wire.ParseBody(res.Remaining, "X")
	require.NoError(t, err)
	require.False(t, body.Suspended)
	assert.Equal(t, "body", string(body.Chunk))
	assert.True(t, body.Done)
	assert.Equal(t, "", string(body.Remaining))
}

func TestParseHeaders_TwoPartsWithPreamble(t *testing.T) {
	input := []byte("preamble\r\n--X\r\nA: 1\r\n\r\nfirst\r\n--X\r\nB: 2\r\n\r\nsecond\r\n--X--epilogue")

	res1, err := wire.ParseHeaders(input, "X")
	require.NoError(t, err)
	require.True(t, res1.Done)
	assert.Equal(t, []wire.Header{{Name: "a", Value: "1"}}, res1.Headers)

	body1, err := wire.ParseBody(res1.Remaining, "X")
	require.NoError(t, err)
	require.False(t, body1.Suspended)
	assert.Equal(t, "first", string(body1.Chunk))
	assert.False(t, body1.Done)

	res2, err := wire.ParseHeaders(body1.Remaining, "X")
	require.NoError(t, err)
	require.True(t, res2.Done)
	assert.Equal(t, []wire.Header{{Name: "b", Value: "2"}}, res2.Headers)

	body2, err := wire.ParseBody(res2.Remaining, "X")
	require.NoError(t, err)
	require.False(t, body2.Suspended)
	assert.Equal(t, "second", string(body2.Chunk))
	assert.True(t, body2.Done)
	assert.Equal(t, "epilogue", string(body2.Remaining))
}

func TestParseHeaders_ChunkedSuspension(t *testing.T) {
	input := []byte("--X\r\nA: 1\r\n\r\nbody\r\n--X--")

	res, err := wire.ParseHeaders(input[:0], "X")
	require.NoError(t, err)
	for i := 0; !res.Done; i++ {
		require.NotNil(t, res.Resume, "expected a continuation at byte %d", i)
		require.Less(t, i, len(input))
		res, err = res.Resume(input[i : i+1])
		require.NoError(t, err)
	}
	assert.Equal(t, []wire.Header{{Name: "a", Value: "1"}}, res.Headers)

	body, err := wire.ParseBody(res.Remaining[:0], "X")
	require.NoError(t, err)
	var chunk []byte
	rest := res.Remaining
	i := 0
	for body.Suspended {
		chunk = append(chunk, body.Chunk...)
		require.Less(t, i, len(rest))
		body, err = body.Resume(rest[i : i+1])
		require.NoError(t, err)
		i++
	}
	chunk = append(chunk, body.Chunk...)
	assert.Equal(t, "body", string(chunk))
	assert.True(t, body.Done)
}

func TestParseHeaders_FoldedHeader(t *testing.T) {
	input := []byte("--X\r\nA: one\r\n two\r\n\r\n\r\n--X--")

	res, err := wire.ParseHeaders(input, "X")
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, []wire.Header{{Name: "a", Value: "one two"}}, res.Headers)
}

func TestParseHeaders_LoneCRInValue(t *testing.T) {
	input := []byte("--X\r\nA: x\ry\r\n\r\n\r\n--X--")

	res, err := wire.ParseHeaders(input, "X")
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, []wire.Header{{Name: "a", Value: "x\ry"}}, res.Headers)
}

func TestParseHeaders_EmptyContinuationFails(t *testing.T) {
	res, err := wire.ParseHeaders([]byte("--X"), "X")
	require.NoError(t, err)
	require.False(t, res.Done)
	_, err = res.Resume(nil)
	assert.ErrorIs(t, err, wire.ErrEmptyContinuation)
}

func TestParseHeaders_BadBoundaryTrailer(t *testing.T) {
	_, err := wire.ParseHeaders([]byte("--Xzz"), "X")
	assert.ErrorIs(t, err, wire.ErrBadBoundaryTrailer)
}

func TestParseHeaders_MalformedMissingColon(t *testing.T) {
	_, err := wire.ParseHeaders([]byte("--X\r\nNotAHeader\r\n\r\n"), "X")
	assert.ErrorIs(t, err, wire.ErrMalformedHeaderBlock)
}

func TestParseHeaders_NoHeaders(t *testing.T) {
	res, err := wire.ParseHeaders([]byte("--X\r\n\r\nbody"), "X")
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Empty(t, res.Headers)
	assert.Equal(t, "body", string(res.Remaining))
}

func TestParseHeaders_TerminalBoundaryNoHeaders(t *testing.T) {
	res, err := wire.ParseHeaders([]byte("--X--epilogue"), "X")
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Empty(t, res.Headers)
	assert.Equal(t, "epilogue", string(res.Remaining))
}

func TestParseBody_EmptyBody(t *testing.T) {
	res, err := wire.ParseBody([]byte("--X--"), "X")
	require.NoError(t, err)
	require.False(t, res.Suspended)
	assert.Empty(t, res.Chunk)
	assert.False(t, res.Done)
	assert.Equal(t, "--X--", string(res.Remaining))
}

func TestParseBody_NeverSplitsBoundaryAcrossChunks(t *testing.T) {
	input := []byte("hello\r\n--X--")
	res, err := wire.ParseBody(input[:0], "X")
	require.NoError(t, err)
	var chunk []byte
	i := 0
	for res.Suspended {
		chunk = append(chunk, res.Chunk...)
		assert.NotContains(t, string(res.Chunk), "--X")
		require.Less(t, i, len(input))
		res, err = res.Resume(input[i : i+1])
		require.NoError(t, err)
		i++
	}
	chunk = append(chunk, res.Chunk...)
	assert.Equal(t, "hello", string(chunk))
	assert.True(t, res.Done)
}

func TestBoundaryNotReallyAFold(t *testing.T) {
	// A lone CRLF inside the body that isn't followed by the boundary marker
	// must be kept as ordinary body bytes.
	res, err := wire.ParseBody([]byte("a\r\nb\r\n--X--"), "X")
	require.NoError(t, err)
	require.False(t, res.Suspended)
	assert.Equal(t, "a\r\nb", string(res.Chunk))
	assert.True(t, res.Done)
}
