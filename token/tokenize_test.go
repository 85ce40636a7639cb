package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "empty",
			in:   "",
		},
		{
			name: "ignored only",
			in:   " \t\n\r abc XYZ 23456789 ",
		},
		{
			name: "bits",
			in:   "0 1\n",
			want: []Token{
				{Type: TBit, Bytes: []byte("0"), Pos: Pos{I: 0}},
				{Type: TBit, Bytes: []byte("1"), Pos: Pos{I: 2, Col: 2}},
			},
		},
		{
			name: "hex",
			in:   "x2A xff",
			want: []Token{
				{Type: THex, Bytes: []byte("2A"), Pos: Pos{I: 0}},
				{Type: THex, Bytes: []byte("ff"), Pos: Pos{I: 4, Col: 4}},
			},
		},
		{
			name: "decimal",
			in:   "$65\n$0",
			want: []Token{
				{Type: TDecimal, Bytes: []byte("65"), Pos: Pos{I: 0}},
				{Type: TDecimal, Bytes: []byte("0"), Pos: Pos{I: 4, Line: 1}},
			},
		},
		{
			name: "hex at end of input",
			in:   "x7",
			want: []Token{
				{Type: THex, Bytes: []byte("7"), Pos: Pos{I: 0}},
			},
		},
		{
			name: "comment",
			in:   "; hello 0101\n1",
			want: []Token{
				{Type: TComment, Bytes: []byte(" hello 0101"), Pos: Pos{I: 0}},
				{Type: TBit, Bytes: []byte("1"), Pos: Pos{I: 13, Line: 1}},
			},
		},
		{
			name: "empty comment",
			in:   ";\n;",
			want: []Token{
				{Type: TComment, Pos: Pos{I: 0}},
				{Type: TComment, Pos: Pos{I: 2, Line: 1}},
			},
		},
		{
			name: "comment at end of input",
			in:   "; 01",
			want: []Token{
				{Type: TComment, Bytes: []byte(" 01"), Pos: Pos{I: 0}},
			},
		},
		{
			name: "literal terminator is discarded",
			in:   "x41x42",
			want: []Token{
				{Type: THex, Bytes: []byte("41"), Pos: Pos{I: 0}},
			},
		},
		{
			name: "literal terminator can be a comment marker",
			in:   "$1;10\n",
			want: []Token{
				{Type: TDecimal, Bytes: []byte("1"), Pos: Pos{I: 0}},
				{Type: TBit, Bytes: []byte("1"), Pos: Pos{I: 3, Col: 3}},
				{Type: TBit, Bytes: []byte("0"), Pos: Pos{I: 4, Col: 4}},
			},
		},
		{
			name: "decimal stops at hex digit",
			in:   "$12a1",
			want: []Token{
				{Type: TDecimal, Bytes: []byte("12"), Pos: Pos{I: 0}},
				{Type: TBit, Bytes: []byte("1"), Pos: Pos{I: 4, Col: 4}},
			},
		},
		{
			name: "markers are case sensitive",
			in:   "XAB",
			want: nil,
		},
		{
			name: "digits after upper case marker",
			in:   "X41",
			want: []Token{
				{Type: TBit, Bytes: []byte("1"), Pos: Pos{I: 2, Col: 2}},
			},
		},
		{
			name: "non ascii is ignored",
			in:   "é1",
			want: []Token{
				{Type: TBit, Bytes: []byte("1"), Pos: Pos{I: 2, Col: 2}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize([]byte(tt.in))
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		pos Pos
		n   int
	}{
		{in: "x", err: ErrEmptyHex},
		{in: "x ", err: ErrEmptyHex},
		{in: "xg1", err: ErrEmptyHex},
		{in: "1\n x;", err: ErrEmptyHex, pos: Pos{I: 3, Line: 1, Col: 1}, n: 1},
		{in: "$", err: ErrEmptyDecimal},
		{in: "$a", err: ErrEmptyDecimal},
		{in: "x41 $ 1", err: ErrEmptyDecimal, pos: Pos{I: 4, Col: 4}, n: 1},
	}
	for _, tt := range tests {
		toks, err := Tokenize([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("Tokenize(%q): got error %v, want %v", tt.in, err, tt.err)
			continue
		}
		var tkErr *TokenizeErr
		if !errors.As(err, &tkErr) {
			t.Errorf("Tokenize(%q): error %T is not a *TokenizeErr", tt.in, err)
			continue
		}
		if tkErr.Pos != tt.pos {
			t.Errorf("Tokenize(%q): error at %s, want %s", tt.in, tkErr.Pos, tt.pos)
		}
		if len(toks) != tt.n {
			t.Errorf("Tokenize(%q): got %d tokens before error, want %d", tt.in, len(toks), tt.n)
		}
	}
}

func TestTokenValue(t *testing.T) {
	tests := []struct {
		tok  Token
		want byte
		err  error
	}{
		{tok: Token{Type: TBit, Bytes: []byte("0")}, want: 0},
		{tok: Token{Type: TBit, Bytes: []byte("1")}, want: 1},
		{tok: Token{Type: THex, Bytes: []byte("2A")}, want: 0x2a},
		{tok: Token{Type: THex, Bytes: []byte("ff")}, want: 0xff},
		{tok: Token{Type: THex, Bytes: []byte("0000000000000000000041")}, want: 0x41},
		{tok: Token{Type: THex, Bytes: []byte("100")}, err: ErrByteOverflow},
		{tok: Token{Type: THex, Bytes: []byte("ffffffffffffffffffffffff")}, err: ErrByteOverflow},
		{tok: Token{Type: TDecimal, Bytes: []byte("65")}, want: 65},
		{tok: Token{Type: TDecimal, Bytes: []byte("255")}, want: 255},
		{tok: Token{Type: TDecimal, Bytes: []byte("0065")}, want: 65},
		{tok: Token{Type: TDecimal, Bytes: []byte("256")}, err: ErrByteOverflow},
		{tok: Token{Type: TComment, Bytes: []byte("hi")}, err: ErrUnsupported},
	}
	for _, tt := range tests {
		got, err := tt.tok.Value()
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%s.Value(): got error %v, want %v", tt.tok.Literal(), err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s.Value(): %v", tt.tok.Literal(), err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s.Value() = %d, want %d", tt.tok.Literal(), got, tt.want)
		}
	}
}

func TestTokenLiteral(t *testing.T) {
	toks, err := Tokenize([]byte("x2a $7 1 ;c\n"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for i := range toks {
		got = append(got, toks[i].Literal())
	}
	want := []string{"x2a", "$7", "1", ";c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("literals mismatch (-want +got):\n%s", diff)
	}
}
