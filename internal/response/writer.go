package response

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/nhdewitt/digit-matrix/internal/headers"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

var ErrOutOfOrder = errors.New("writer state out-of-order")

type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

// DefaultHeaders is the header block every reply carries: the connection is
// always closed after one response.
func DefaultHeaders(contentLen int, contentType string) headers.Headers {
	h := headers.NewHeaders()
	h.Set("Content-Length", strconv.Itoa(contentLen))
	h.Set("Connection", "close")
	h.Set("Content-Type", contentType)
	h.Set("Date", time.Now().UTC().Format(time.RFC1123))

	return h
}

func (w *Writer) State() writerState {
	return w.state
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return ErrOutOfOrder
	}

	if _, err := io.WriteString(w.writer, statusCode.statusLine()); err != nil {
		return err
	}

	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return ErrOutOfOrder
	}

	if _, err := h.WriteTo(w.writer); err != nil {
		return err
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, ErrOutOfOrder
	}

	w.state = StateDone
	return w.writer.Write(p)
}

// Reply writes a complete response in one go.
func (w *Writer) Reply(statusCode StatusCode, contentType string, body []byte) error {
	if err := w.WriteStatusLine(statusCode); err != nil {
		return err
	}
	if err := w.WriteHeaders(DefaultHeaders(len(body), contentType)); err != nil {
		return err
	}
	n, err := w.WriteBody(body)
	if err != nil {
		return err
	}
	if n != len(body) {
		return io.ErrShortWrite
	}
	return nil
}
