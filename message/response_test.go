package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httpbase/deadline"
	"httpbase/message/status"
	"httpbase/stream"
)

func TestNewResponse(t *testing.T) {
	res := NewResponse(404)

	assert.Equal(t, uint(404), res.Status.Code)
	assert.Equal(t, "Not Found", res.Status.ReasonPhrase)
	assert.Equal(t, Version11, res.Version)

	custom := NewResponse(799)
	assert.Equal(t, status.CustomReasonPhrase, custom.Status.ReasonPhrase)
}

func TestResponseWithBody(t *testing.T) {
	res := NewResponse(200)
	res.Headers.Set("Content-Type", "text/plain")
	res.Body = PullBody(stream.NewBytesReader([]byte("hello")))

	r, ok := res.Body.Readable()
	require.True(t, ok)

	buf := make([]byte, 10)
	n, err := r.Read(buf, deadline.Never)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), buf[:n])

	assert.True(t, res.Status.Equal(status.OK))
}
