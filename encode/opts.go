package encode

import "github.com/scisa/binconv/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeWidth sets the number of bytes per line.  0 puts everything on
// one line.
func EncodeWidth(n int) EncodeOption {
	return func(es *EncState) { es.width = max(n, 0) }
}
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}
