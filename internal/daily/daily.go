// Package daily derives the same solution words for everyone on a given day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker is a deterministic index stream keyed by salt and date:
// draw k is HMAC-SHA256(salt, "YYYY-MM-DD#k") reduced modulo n.
// It satisfies game.Picker.
type Picker struct {
	salt  []byte
	date  string
	draws uint64
}

// NewPicker returns the stream for the UTC day containing date.
func NewPicker(date time.Time, salt string) *Picker {
	return &Picker{salt: []byte(salt), date: DateKey(date)}
}

// Date is the day key the stream is derived from.
func (p *Picker) Date() string { return p.date }

// Intn returns the next index in [0, n). It returns 0 for n <= 0.
func (p *Picker) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, p.salt)
	h.Write([]byte(p.date))
	var ctr [9]byte
	ctr[0] = '#'
	binary.BigEndian.PutUint64(ctr[1:], p.draws)
	h.Write(ctr[:])
	p.draws++

	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
