package vector

// Mask holds one boolean per lane. Comparisons produce it and Select
// consumes it.
type Mask [4]bool

// MaskExcept returns a mask with every lane set except lane i.
func MaskExcept(i int) Mask {
	checkLane(i)
	m := MaskAll
	m[i] = false
	return m
}

// MaskOnly returns a mask with only lane i set.
func MaskOnly(i int) Mask {
	checkLane(i)
	var m Mask
	m[i] = true
	return m
}

func (m Mask) And(o Mask) Mask {
	return Mask{m[0] && o[0], m[1] && o[1], m[2] && o[2], m[3] && o[3]}
}

func (m Mask) Or(o Mask) Mask {
	return Mask{m[0] || o[0], m[1] || o[1], m[2] || o[2], m[3] || o[3]}
}

func (m Mask) Xor(o Mask) Mask {
	return Mask{m[0] != o[0], m[1] != o[1], m[2] != o[2], m[3] != o[3]}
}

func (m Mask) Not() Mask {
	return Mask{!m[0], !m[1], !m[2], !m[3]}
}

// Lane returns lane i.
func (m Mask) Lane(i int) bool {
	checkLane(i)
	return m[i]
}

// AllTrue reports whether every lane is set.
func (m Mask) AllTrue() bool { return m[0] && m[1] && m[2] && m[3] }

// AnyTrue reports whether at least one lane is set.
func (m Mask) AnyTrue() bool { return m[0] || m[1] || m[2] || m[3] }

// AllTrue3 ignores the w lane.
func (m Mask) AllTrue3() bool { return m[0] && m[1] && m[2] }

// AnyTrue3 ignores the w lane.
func (m Mask) AnyTrue3() bool { return m[0] || m[1] || m[2] }

// None3 reports whether x, y and z are all clear.
func (m Mask) None3() bool { return !m.AnyTrue3() }

// Bits packs the mask into the low four bits, x in bit 0.
func (m Mask) Bits() uint8 {
	var b uint8
	for i, set := range m {
		if set {
			b |= 1 << i
		}
	}
	return b
}

// CountTrue returns the number of set lanes.
func (m Mask) CountTrue() int {
	n := 0
	for _, set := range m {
		if set {
			n++
		}
	}
	return n
}
