package response

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Reply(StatusOK, "text/plain", []byte("OK")))
	assert.Equal(t, StateDone, w.State())

	resp, err := http.ReadResponse(bufio.NewReader(&buf), nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "HTTP/1.1", resp.Proto)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "close", resp.Header.Get("Connection"))
	assert.Equal(t, int64(2), resp.ContentLength)
	assert.NotEmpty(t, resp.Header.Get("Date"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestWriterOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.WriteBody([]byte("early"))
	assert.ErrorIs(t, err, ErrOutOfOrder)
	assert.ErrorIs(t, w.WriteHeaders(DefaultHeaders(0, "text/plain")), ErrOutOfOrder)

	require.NoError(t, w.WriteStatusLine(StatusOK))
	assert.ErrorIs(t, w.WriteStatusLine(StatusOK), ErrOutOfOrder)
	require.NoError(t, w.WriteHeaders(DefaultHeaders(0, "text/plain")))
	_, err = w.WriteBody(nil)
	require.NoError(t, err)
	_, err = w.WriteBody(nil)
	assert.ErrorIs(t, err, ErrOutOfOrder)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("HTTP/1.1 200 OK\r\n")))
}

type brokenConn struct{}

func (brokenConn) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestReplyWriteError(t *testing.T) {
	w := NewWriter(brokenConn{})
	err := w.Reply(StatusOK, "text/html", []byte("<html></html>"))
	require.Error(t, err)
	assert.Equal(t, StateWritingStatusLine, w.State())
}
