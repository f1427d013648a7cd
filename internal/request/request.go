package request

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/nhdewitt/digit-matrix/internal/headers"
)

// MaxBytes is the most a single request may occupy. Anything past it is
// never read.
const MaxBytes = 1024

type Request struct {
	RequestLine RequestLine
	Headers     headers.Headers
	Params      Params
}

type RequestLine struct {
	HttpVersion   string
	RequestTarget string
	Method        string
}

// RequestFromReader performs exactly one read of at most MaxBytes and parses
// whatever arrived. There is no reassembly of requests split across reads.
func RequestFromReader(reader io.Reader) (*Request, error) {
	buf := make([]byte, MaxBytes)
	n, err := reader.Read(buf)
	if n == 0 && err != nil {
		return nil, fmt.Errorf("error reading request: %w", err)
	}

	return Parse(buf[:n]), nil
}

// Parse never fails. Missing or malformed parts come back empty.
func Parse(raw []byte) *Request {
	r := &Request{
		Headers: headers.NewHeaders(),
	}

	line, rest, _ := bytes.Cut(raw, []byte("\n"))
	r.RequestLine = requestLineFromString(strings.TrimSpace(string(line)))
	r.parseHeaders(rest)

	if r.RequestLine.Method != "GET" {
		return r
	}
	r.Params = ParseQuery(r.RequestLine.RequestTarget)

	return r
}

func (r *Request) parseHeaders(data []byte) {
	for len(data) > 0 {
		n, done, err := r.Headers.Parse(data)
		if err != nil || done || n == 0 {
			return
		}
		data = data[n:]
	}
}

func requestLineFromString(s string) RequestLine {
	parts := strings.Split(s, " ")

	var rl RequestLine
	rl.Method = parts[0]
	if len(parts) < 2 {
		return rl
	}
	rl.RequestTarget = parts[1]

	if len(parts) > 2 {
		if protocol, version, ok := strings.Cut(parts[2], "/"); ok && protocol == "HTTP" {
			rl.HttpVersion = version
		}
	}

	return rl
}
