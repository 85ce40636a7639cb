package token

import "fmt"

// Pos is the position of a character in the input.  All fields are zero
// based.
type Pos struct {
	I    int
	Line int
	Col  int
}

func (p *Pos) advance(c byte) {
	p.I++
	if c == '\n' {
		p.Line++
		p.Col = 0
		return
	}
	p.Col++
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.I, p.Line, p.Col)
}
