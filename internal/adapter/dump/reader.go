// Package dump reads Wikipedia XML dumps as a stream of pages.
package dump

import (
	"bufio"
	"compress/bzip2"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"wikidex/internal/domain"
)

// readChunkSize is the buffered read size against the dump file. The
// decoder only ever holds one page in memory on top of this buffer.
const readChunkSize = 32 << 20

// Reader pulls completed pages out of a dump stream. It replaces the
// usual callback-driven XML handler with an explicit state object: an
// element stack plus title/text accumulation buffers, drained through
// Next one page at a time.
type Reader struct {
	dec    *xml.Decoder
	stack  []string
	title  strings.Builder
	text   strings.Builder
	closer io.Closer
}

// NewReader returns a Reader over an already-open XML stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// Open opens a dump file for streaming. Files ending in .bz2 are
// decompressed transparently. If progress is non-nil every byte read
// from the file is also written to it (compressed bytes, so a byte
// progress bar tracks the file position).
func Open(path string, progress io.Writer) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader = f
	if progress != nil {
		r = io.TeeReader(r, progress)
	}
	buffered := bufio.NewReaderSize(r, readChunkSize)

	var stream io.Reader = buffered
	if strings.HasSuffix(path, ".bz2") {
		stream = bzip2.NewReader(buffered)
	}

	reader := NewReader(stream)
	reader.closer = f
	return reader, nil
}

// Size returns the byte size of a dump file, for progress reporting.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Next returns the next completed page. It returns io.EOF at the end
// of the stream. Any other error means the dump is malformed and the
// run must abort; no recovery is attempted.
func (r *Reader) Next() (domain.RawPage, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return domain.RawPage{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			r.stack = append(r.stack, t.Name.Local)
		case xml.CharData:
			// Character data belongs to the innermost open element,
			// wherever it nests (the text element sits under revision).
			if n := len(r.stack); n > 0 {
				switch r.stack[n-1] {
				case "title":
					r.title.Write(t)
				case "text":
					r.text.Write(t)
				}
			}
		case xml.EndElement:
			if n := len(r.stack); n > 0 {
				r.stack = r.stack[:n-1]
			}
			if t.Name.Local == "page" {
				page := domain.RawPage{Title: r.title.String(), Text: r.text.String()}
				r.title.Reset()
				r.text.Reset()
				return page, nil
			}
		}
	}
}

// Close closes the underlying file, if the Reader opened one.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
