package game

import "github.com/valyala/fastrand"

// Picker returns a pseudo-random index in [0, n). n is always positive.
type Picker interface {
	Intn(n int) int
}

// FastPicker draws indices from the process-wide fastrand generator.
type FastPicker struct{}

func (FastPicker) Intn(n int) int {
	return int(fastrand.Uint32n(uint32(n)))
}

// sample draws n distinct entries of pool without replacement
// (partial Fisher–Yates on a copy, pool itself is left untouched).
func sample(pool []string, n int, p Picker) []string {
	buf := make([]string, len(pool))
	copy(buf, pool)
	for i := 0; i < n; i++ {
		j := i + p.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:n:n]
}
