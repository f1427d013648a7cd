package control

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Num is the outcome of reading the num parameter. Text that is not an
// integer becomes 0 with Defaulted set, and is then displayed like any other
// in-range value. An integer too large for int keeps its text in Overflow
// and is never displayed.
type Num struct {
	Value     int
	Defaulted bool
	Overflow  string
}

func ParseNum(s string) Num {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		v, _ := new(big.Int).SetString(s, 10)
		return Num{Overflow: v.String()}
	}
	if err != nil {
		return Num{Value: 0, Defaulted: true}
	}
	return Num{Value: n}
}

// Invalid is the text recorded for a value outside 0-9.
func (n Num) Invalid() string {
	if n.Overflow != "" {
		return n.Overflow
	}
	return strconv.Itoa(n.Value)
}
