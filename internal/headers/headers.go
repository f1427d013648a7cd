package headers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	crlf                = "\r\n"
	validFieldNameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&'*+-.^_`|~"
)

// Headers maps lower-cased field names to their values. Repeated fields are
// joined with ", ".
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// Parse consumes one CRLF-terminated field line from data. n is 0 when data
// holds no complete line yet; done reports the blank line ending the block.
func (h Headers) Parse(data []byte) (n int, done bool, err error) {
	idx := bytes.Index(data, []byte(crlf))
	if idx == -1 {
		return 0, false, nil
	}
	if idx == 0 {
		return len(crlf), true, nil
	}

	fields := data[:idx]
	colonIdx := bytes.IndexByte(fields, ':')
	if colonIdx == -1 {
		return 0, false, fmt.Errorf("malformed header line (no colon): %q", fields)
	}

	name := fields[:colonIdx]
	if len(name) == 0 || bytes.ContainsAny(name, " \t") {
		return 0, false, fmt.Errorf("malformed field-name: %q", fields)
	}
	for _, c := range name {
		if !strings.ContainsRune(validFieldNameChars, rune(c)) {
			return 0, false, fmt.Errorf("invalid character in field-name: %q", fields)
		}
	}

	h.Set(string(name), string(bytes.TrimSpace(fields[colonIdx+1:])))

	return idx + len(crlf), false, nil
}

func (h Headers) Set(key, value string) {
	key = strings.ToLower(key)
	if v, ok := h[key]; ok {
		h[key] = v + ", " + value
		return
	}
	h[key] = value
}

// Replace overwrites any existing value for key.
func (h Headers) Replace(key, value string) {
	h[strings.ToLower(key)] = value
}

func (h Headers) Get(key string) string {
	return h[strings.ToLower(key)]
}

func (h Headers) Del(key string) {
	delete(h, strings.ToLower(key))
}

// WriteTo writes the block in canonical case, sorted by name, followed by the
// terminating blank line.
func (h Headers) WriteTo(w io.Writer) (int64, error) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	caser := cases.Title(language.English)
	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(caser.String(k))
		buf.WriteString(": ")
		buf.WriteString(h[k])
		buf.WriteString(crlf)
	}
	buf.WriteString(crlf)

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("error writing headers: %w", err)
	}
	return int64(n), nil
}
