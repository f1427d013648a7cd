package request

import "strings"

type Param struct {
	Key   string
	Value string
}

// Params keeps query pairs in arrival order. Lookups see the last
// occurrence of a key.
type Params []Param

func (p Params) Get(key string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return "", false
}

// Value is Get without the presence flag.
func (p Params) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Map collapses the pairs, later keys overwriting earlier ones.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, kv := range p {
		m[kv.Key] = kv.Value
	}
	return m
}

// ParseQuery extracts the pairs after the first '?' in target.
func ParseQuery(target string) Params {
	_, query, ok := strings.Cut(target, "?")
	if !ok || query == "" {
		return nil
	}

	pairs := strings.Split(query, "&")
	params := make(Params, 0, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		params = append(params, Param{
			Key:   Decode(key),
			Value: Decode(value),
		})
	}

	return params
}

// Decode turns '+' into a space and %XX into its byte when XX names a space
// or an ASCII punctuation character. Every other escape is left as written.
func Decode(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			sb.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				hi, ok1 := unhex(s[i+1])
				lo, ok2 := unhex(s[i+2])
				if b := hi<<4 | lo; ok1 && ok2 && decodable(b) {
					sb.WriteByte(b)
					i += 2
					continue
				}
			}
			sb.WriteByte('%')
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

func decodable(b byte) bool {
	switch {
	case b == ' ':
		return true
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
