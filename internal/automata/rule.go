package automata

import "strings"

// NeighborSet is a set of neighbor counts in 0..8, stored as a bitmask.
type NeighborSet uint16

// NewNeighborSet builds a set from the given counts; values outside 0..8
// are ignored.
func NewNeighborSet(counts ...int) NeighborSet {
	var s NeighborSet
	for _, n := range counts {
		if n >= 0 && n <= 8 {
			s |= 1 << uint(n)
		}
	}
	return s
}

// Has reports whether count n is in the set.
func (s NeighborSet) Has(n int) bool {
	return n >= 0 && n <= 8 && s&(1<<uint(n)) != 0
}

// Counts returns the members in ascending order.
func (s NeighborSet) Counts() []int {
	out := make([]int, 0, 9)
	for n := 0; n <= 8; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// ParseRule parses B/S notation such as "B3/S23" into birth and survival
// sets. Parsing is case- and whitespace-insensitive; a missing B or S
// segment yields an empty set for that side, and malformed input also
// yields empty sets rather than an error. An empty rule is a valid
// (all-dying) rule, so lenient parsing loses no information.
func ParseRule(rule string) (birth, survival NeighborSet) {
	r := strings.ToUpper(strings.ReplaceAll(rule, " ", ""))

	bIdx := strings.IndexByte(r, 'B')
	sIdx := strings.IndexByte(r, 'S')

	if bIdx >= 0 {
		end := len(r)
		if sIdx > bIdx {
			end = sIdx
		}
		birth = digitsToSet(r[bIdx+1 : end])
	}
	if sIdx >= 0 {
		survival = digitsToSet(r[sIdx+1:])
	}
	return birth, survival
}

func digitsToSet(segment string) NeighborSet {
	var s NeighborSet
	for _, ch := range segment {
		if ch >= '0' && ch <= '8' {
			s |= 1 << uint(ch-'0')
		}
	}
	return s
}

// FormatRule renders birth and survival sets in B/S notation with digits
// ascending, so FormatRule(ParseRule(x)) is canonical and
// ParseRule(FormatRule(b, s)) recovers b and s exactly.
func FormatRule(birth, survival NeighborSet) string {
	var sb strings.Builder
	sb.WriteByte('B')
	for _, n := range birth.Counts() {
		sb.WriteByte(byte('0' + n))
	}
	sb.WriteByte('/')
	sb.WriteByte('S')
	for _, n := range survival.Counts() {
		sb.WriteByte(byte('0' + n))
	}
	return sb.String()
}
