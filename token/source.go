package token

import (
	"bufio"
	"io"
)

// TokenSource provides streaming tokenization from an io.Reader.
//
// Input is consumed strictly one byte at a time and is never pushed
// back: the character ending a literal is dropped, and the newline
// ending a comment belongs to the comment.
type TokenSource struct {
	reader io.ByteReader

	// position of the next byte to read
	pos Pos
}

// NewTokenSource creates a new TokenSource reading from r.  If r is not
// an io.ByteReader it is wrapped in a bufio.Reader.
func NewTokenSource(r io.Reader) *TokenSource {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &TokenSource{reader: br}
}

// Pos returns the position of the next character to be read.
func (ts *TokenSource) Pos() Pos {
	return ts.pos
}

// Read returns the next token.  At end of input it returns io.EOF.
// Errors from the underlying reader are returned as is; lexical errors
// are *TokenizeErr.
func (ts *TokenSource) Read() (Token, error) {
	for {
		c, p, err := ts.next()
		if err != nil {
			return Token{}, err
		}
		switch c {
		case ';':
			return ts.readComment(p)
		case 'x':
			return ts.readLiteral(THex, p, isHex)
		case '$':
			return ts.readLiteral(TDecimal, p, isDec)
		case '0', '1':
			return Token{Type: TBit, Bytes: []byte{c}, Pos: p}, nil
		}
	}
}

func (ts *TokenSource) next() (byte, Pos, error) {
	c, err := ts.reader.ReadByte()
	if err != nil {
		return 0, ts.pos, err
	}
	p := ts.pos
	ts.pos.advance(c)
	return c, p, nil
}

func (ts *TokenSource) readComment(start Pos) (Token, error) {
	tok := Token{Type: TComment, Pos: start}
	for {
		c, _, err := ts.next()
		if err == io.EOF {
			return tok, nil
		}
		if err != nil {
			return Token{}, err
		}
		if c == '\n' {
			return tok, nil
		}
		tok.Bytes = append(tok.Bytes, c)
	}
}

func (ts *TokenSource) readLiteral(tt TokenType, start Pos, digit func(byte) bool) (Token, error) {
	tok := Token{Type: tt, Pos: start}
	for {
		c, _, err := ts.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !digit(c) {
			// c ends the literal and is discarded.
			break
		}
		tok.Bytes = append(tok.Bytes, c)
	}
	if len(tok.Bytes) == 0 {
		return Token{}, EmptyLiteralErr(tt, &start)
	}
	return tok, nil
}

func isDec(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDec(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
