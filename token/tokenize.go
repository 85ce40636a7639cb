package token

import (
	"bytes"
	"io"
)

// Tokenize returns the tokens of doc.  On error, the tokens read so far
// are returned along with it.
func Tokenize(doc []byte) ([]Token, error) {
	ts := NewTokenSource(bytes.NewReader(doc))
	var res []Token
	for {
		tok, err := ts.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, tok)
	}
}
