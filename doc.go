// Package binconv translates binconv text into the bytes it describes.
//
// The text is a sequence of tokens, see package
// [github.com/scisa/binconv/token]:
//
//	; the letter 'a', three ways
//	01100001 x61 $97
//
// Bits are grouped eight at a time, most significant first.  Bits left
// over at end of input are dropped.  A hex or decimal literal may not
// appear while a bit group is incomplete, and must decode to at most
// 255.
//
// [Translate] performs a single translation; a [Translator] may be
// reused across several inputs writing to the same output.
//
// # Related Packages
//
//   - github.com/scisa/binconv/token - lexer
//   - github.com/scisa/binconv/encode - bytes to binconv text
package binconv
