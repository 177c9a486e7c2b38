package domain

// Minutes maps each time category to a whole number of minutes.
// A missing key reads as zero.
type Minutes map[TimeCategory]int

// NewMinutes returns a Minutes with every category present and zero.
func NewMinutes() Minutes {
	m := make(Minutes, len(Categories))
	for _, c := range Categories {
		m[c] = 0
	}
	return m
}

// Get returns the minutes for c, or zero when absent.
func (m Minutes) Get(c TimeCategory) int {
	return m[c]
}

// Total sums all categories.
func (m Minutes) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// Clone returns an independent copy.
func (m Minutes) Clone() Minutes {
	out := make(Minutes, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AddInto adds every value of m into dst.
func (m Minutes) AddInto(dst Minutes) {
	for k, v := range m {
		dst[k] += v
	}
}
