package ranges

import "unicode/utf8"

// Runes is a bidirectional range over the runes of a string. Positions are byte offsets,
// so stepping decodes one UTF-8 sequence and the range cannot offer constant-time offsets.
type Runes struct {
	s string
}

func NewRunes(s string) *Runes {
	return &Runes{s: s}
}

func (r *Runes) Begin() int { return 0 }
func (r *Runes) End() int   { return len(r.s) }

func (r *Runes) Next(p int) int {
	_, size := utf8.DecodeRuneInString(r.s[p:])
	return p + size
}

func (r *Runes) Prev(p int) int {
	_, size := utf8.DecodeLastRuneInString(r.s[:p])
	return p - size
}

func (r *Runes) Get(p int) rune {
	c, _ := utf8.DecodeRuneInString(r.s[p:])
	return c
}

func (r *Runes) Multipass() {}
