package token

import "errors"

var (
	ErrEmptyHex     = errors.New("empty hex literal")
	ErrEmptyDecimal = errors.New("empty decimal literal")
	ErrByteOverflow = errors.New("literal does not fit in a byte")
	ErrPendingBits  = errors.New("literal inside a bit group")
	ErrLiteral      = errors.New("bad literal")
	ErrUnsupported  = errors.New("unsupported")
)

func EmptyLiteralErr(tt TokenType, pos *Pos) error {
	if tt == THex {
		return NewTokenizeErr(ErrEmptyHex, pos)
	}
	return NewTokenizeErr(ErrEmptyDecimal, pos)
}
