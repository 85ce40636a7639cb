package token

import (
	"errors"
	"fmt"
	"strconv"
)

type TokenType int

const (
	TComment TokenType = iota
	THex
	TDecimal
	TBit
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TComment: "TComment",
		THex:     "THex",
		TDecimal: "TDecimal",
		TBit:     "TBit",
	}[t]
}

// Token is a lexical element of binconv text.
//
// For literals, Bytes holds the digit run without its marker.  For
// comments it holds the text following ';' without the terminating
// newline.  For bits it is the single character '0' or '1'.
type Token struct {
	Type  TokenType
	Bytes []byte
	Pos   Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Bytes, t.Pos)
}

// Literal returns the token as it appeared in the input, marker included.
// Comments are returned without their terminating newline.
func (t *Token) Literal() string {
	switch t.Type {
	case TComment:
		return ";" + string(t.Bytes)
	case THex:
		return "x" + string(t.Bytes)
	case TDecimal:
		return "$" + string(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// Value decodes the value of a bit, hex or decimal token.  Literals
// decoding above 255 yield an error wrapping ErrByteOverflow.
func (t *Token) Value() (byte, error) {
	var base int
	switch t.Type {
	case TBit:
		return t.Bytes[0] - '0', nil
	case THex:
		base = 16
	case TDecimal:
		base = 10
	default:
		return 0, NewTokenizeErr(fmt.Errorf("%w: %s has no value", ErrUnsupported, t.Type), &t.Pos)
	}
	v, err := strconv.ParseUint(string(t.Bytes), base, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, NewTokenizeErr(fmt.Errorf("%w: %s", ErrByteOverflow, t.Literal()), &t.Pos)
		}
		return 0, NewTokenizeErr(fmt.Errorf("%w %s: %w", ErrLiteral, t.Literal(), err), &t.Pos)
	}
	return byte(v), nil
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
