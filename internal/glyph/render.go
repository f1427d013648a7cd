// Package glyph draws the digits 0-9 onto a 32x32 frame from axis-aligned
// rectangle fills, in the manner of a seven-segment display.
package glyph

type Digit uint8

// ToDigit is the only way to build a Digit from an arbitrary integer.
func ToDigit(n int) (Digit, bool) {
	if n < 0 || n > 9 {
		return 0, false
	}
	return Digit(n), true
}

func (d Digit) Int() int { return int(d) }

type Thickness int

const (
	DefaultThickness Thickness = 3

	// MaxThickness is the widest stroke for which the concentric passes of
	// "0" still leave a positive side height.
	MaxThickness Thickness = 7
)

// Clamp keeps t within [1, MaxThickness].
func (t Thickness) Clamp() Thickness {
	if t < 1 {
		return 1
	}
	if t > MaxThickness {
		return MaxThickness
	}
	return t
}

// Frame anchors shared by every glyph.
const (
	left   = 6
	right  = 26
	top    = 2
	middle = 14
	bottom = 30
	width  = right - left
	height = bottom - top
)

// Render draws d in colour c with strokes t pixels wide.
func Render(d Digit, c Color, t Thickness) Buffer {
	var b Buffer
	s := int(t.Clamp())
	half := s / 2

	hTop := func() { b.fill(left, top, width, s, c) }
	hMiddle := func() { b.fill(left, middle-half, width, s, c) }
	hBottom := func() { b.fill(left, bottom-s, width, s, c) }
	vLeftFull := func() { b.fill(left, top, s, height, c) }
	vRightFull := func() { b.fill(right-s, top, s, height, c) }
	vLeftUpper := func() { b.fill(left, top, s, middle-top, c) }
	vRightUpper := func() { b.fill(right-s, top, s, middle-top, c) }
	vLeftLower := func() { b.fill(left, middle, s, bottom-middle, c) }
	vRightLower := func() { b.fill(right-s, middle, s, bottom-middle, c) }
	// upper-left stroke that reaches down into the middle bar
	vLeftJoin := func() { b.fill(left, top, s, middle-top+half, c) }

	switch d {
	case 0:
		for i := 0; i < s; i++ {
			b.fill(left+i, top+i, width-2*i, s, c)
			b.fill(left+i, bottom-s-i, width-2*i, s, c)
			b.fill(left+i, top+s+i, s, height-2*s-2*i, c)
			b.fill(right-s-i, top+s+i, s, height-2*s-2*i, c)
		}
	case 1:
		x := 16 - half
		b.fill(x, top, s, height, c)
		b.fill(x-3, top+2, 3, s, c)
	case 2:
		hTop()
		vRightUpper()
		hMiddle()
		vLeftLower()
		hBottom()
	case 3:
		hTop()
		vRightFull()
		b.fill(left+width/3, middle-half, width*2/3, s, c)
		hBottom()
	case 4:
		vLeftJoin()
		vRightFull()
		hMiddle()
	case 5:
		hTop()
		vLeftJoin()
		b.fill(left, middle-half, width*2/3, s, c)
		vRightLower()
		hBottom()
	case 6:
		hTop()
		vLeftFull()
		hMiddle()
		vRightLower()
		hBottom()
	case 7:
		hTop()
		vRightFull()
	case 8:
		hTop()
		vLeftUpper()
		vRightUpper()
		hMiddle()
		vLeftLower()
		vRightLower()
		hBottom()
	case 9:
		hTop()
		vLeftJoin()
		vRightFull()
		hMiddle()
		hBottom()
	}

	return b
}
