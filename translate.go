package binconv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/scisa/binconv/token"
)

const bitsPerByte = 8

// Translator writes the bytes described by binconv text to an
// io.Writer.
type Translator struct {
	w   *bufio.Writer
	log *slog.Logger
	// set when log accepts debug records
	debug bool

	// pending '0'/'1' characters of the current bit group
	acc []byte
	n   int
}

// NewTranslator creates a Translator writing to w.
func NewTranslator(w io.Writer, opts ...TranslateOption) *Translator {
	t := &Translator{
		w:   bufio.NewWriter(w),
		log: slog.New(slog.DiscardHandler),
		acc: make([]byte, 0, bitsPerByte),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Written returns the number of bytes produced so far, over all calls
// to Translate.
func (t *Translator) Written() int {
	return t.n
}

// Translate consumes r up to end of input.  Output is flushed before
// Translate returns, error or not, so that every byte of a completed
// token reaches the writer.  An incomplete bit group at end of input
// is dropped and does not carry over to the next call.
func (t *Translator) Translate(r io.Reader) (err error) {
	defer func() {
		if ferr := t.w.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("error writing output: %w", ferr)
		}
	}()
	t.acc = t.acc[:0]
	ts := token.NewTokenSource(r)
	for {
		tok, err := ts.Read()
		if err == io.EOF {
			if len(t.acc) != 0 && t.debug {
				t.log.Debug("dropping incomplete bit group", "bits", string(t.acc), "pos", ts.Pos().String())
			}
			t.acc = t.acc[:0]
			return nil
		}
		if err != nil {
			var tkErr *token.TokenizeErr
			if errors.As(err, &tkErr) {
				return err
			}
			return fmt.Errorf("error reading input: %w", err)
		}
		if err := t.token(&tok); err != nil {
			return err
		}
	}
}

func (t *Translator) token(tok *token.Token) error {
	if t.debug {
		t.log.Debug("token", "type", tok.Type.String(), "text", tok.Literal(), "pos", tok.Pos.String())
	}
	switch tok.Type {
	case token.TComment:
		return nil
	case token.TBit:
		t.acc = append(t.acc, tok.Bytes[0])
		if len(t.acc) < bitsPerByte {
			return nil
		}
		var v byte
		for _, c := range t.acc {
			v = v<<1 | (c - '0')
		}
		t.acc = t.acc[:0]
		return t.emit(v, tok)
	default:
		if len(t.acc) != 0 {
			return token.NewTokenizeErr(
				fmt.Errorf("%w: %s after %d bits", token.ErrPendingBits, tok.Literal(), len(t.acc)),
				&tok.Pos)
		}
		v, err := tok.Value()
		if err != nil {
			return err
		}
		return t.emit(v, tok)
	}
}

func (t *Translator) emit(v byte, tok *token.Token) error {
	if err := t.w.WriteByte(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	t.n++
	if t.debug {
		t.log.Debug("byte", "value", fmt.Sprintf("0x%02x", v), "n", t.n, "pos", tok.Pos.String())
	}
	return nil
}

// Translate writes the bytes described by r to w and returns how many
// were written.
func Translate(w io.Writer, r io.Reader, opts ...TranslateOption) (int, error) {
	t := NewTranslator(w, opts...)
	err := t.Translate(r)
	return t.Written(), err
}
