// Package format names the ways a single byte can be written in binconv
// text.
package format

import (
	"errors"
	"fmt"
	"strconv"
)

type Format int

const (
	HexFormat Format = iota
	DecFormat
	BitsFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds the long and short name of each format, indexed by
// Format.
var names = [...][2]string{
	HexFormat:  {"hex", "x"},
	DecFormat:  {"dec", "d"},
	BitsFormat: {"bits", "b"},
}

func ParseFormat(v string) (Format, error) {
	for f, n := range names {
		if v == n[0] || v == n[1] {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(names[f][0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Append appends the text of b in format f to dst.
func (f Format) Append(dst []byte, b byte) []byte {
	switch f {
	case DecFormat:
		dst = append(dst, '$')
		return strconv.AppendUint(dst, uint64(b), 10)
	case BitsFormat:
		for i := 7; i >= 0; i-- {
			dst = append(dst, '0'+(b>>i)&1)
		}
		return dst
	default:
		const digits = "0123456789ABCDEF"
		return append(dst, 'x', digits[b>>4], digits[b&0xf])
	}
}
