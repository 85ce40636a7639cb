// Package encode writes bytes as binconv text.
//
// # Usage
//
//	// hex literals, eight per line
//	err := encode.Encode(w, data)
//
//	// bits, four bytes per line, each line preceded by an offset comment
//	err := encode.Encode(w, data,
//		encode.EncodeFormat(format.BitsFormat),
//		encode.EncodeWidth(4),
//		encode.EncodeComments(true))
//
// Translating the output with [github.com/scisa/binconv.Translate]
// gives back the original bytes.
package encode
