// Package token provides tokenization of binconv text.
//
// binconv text describes a byte stream with four kinds of tokens:
//
//	; comment up to the end of the line
//	x2A      hexadecimal byte literal
//	$42      decimal byte literal
//	00101010 bits, eight of which make a byte
//
// Every other character is ignored.
//
// [TokenSource] reads tokens one character at a time from an [io.Reader].
// [Tokenize] is a convenience for tokenizing bytes.
//
// Grouping bits into bytes is left to the caller; the lexer emits one
// [TBit] token per bit character.
package token
