package encode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/scisa/binconv/format"
)

const defaultWidth = 8

type EncState struct {
	format   format.Format
	width    int
	comments bool

	w   *bufio.Writer
	buf []byte
}

func Encode(w io.Writer, data []byte, opts ...EncodeOption) error {
	es := &EncState{width: defaultWidth}
	for _, opt := range opts {
		opt(es)
	}
	es.w = bufio.NewWriter(w)
	width := es.width
	if width == 0 {
		width = len(data)
	}
	for off := 0; off < len(data); off += width {
		end := min(off+width, len(data))
		if err := es.line(off, data[off:end]); err != nil {
			return err
		}
	}
	return es.w.Flush()
}

func (es *EncState) line(off int, data []byte) error {
	if es.comments {
		if _, err := fmt.Fprintf(es.w, "; %08x\n", off); err != nil {
			return err
		}
	}
	es.buf = es.buf[:0]
	for i, b := range data {
		if i != 0 {
			es.buf = append(es.buf, ' ')
		}
		es.buf = es.format.Append(es.buf, b)
	}
	es.buf = append(es.buf, '\n')
	_, err := es.w.Write(es.buf)
	return err
}
