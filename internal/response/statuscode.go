package response

import "fmt"

type StatusCode int

// The device answers every request it can parse with 200; failures show up
// as a dropped connection.
const StatusOK StatusCode = 200

func (c StatusCode) Reason() string {
	if c == StatusOK {
		return "OK"
	}
	return ""
}

func (c StatusCode) statusLine() string {
	return fmt.Sprintf("HTTP/1.1 %d %s\r\n", int(c), c.Reason())
}
