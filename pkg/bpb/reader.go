package bpb

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bgrewell/fatread/pkg/logging"
)

// fieldReader reads fixed-width little-endian fields one after another. The first failure is kept and every later
// read becomes a no-op, so a decode can be written as a straight list of fields and checked once at the end.
type fieldReader struct {
	r      io.Reader
	offset int64
	err    error
	log    *logging.Logger
	buf    [4]byte
}

func newFieldReader(r io.Reader, offset int64, log *logging.Logger) *fieldReader {
	return &fieldReader{r: r, offset: offset, log: log}
}

// read fills dst completely or records a *ReadError for field.
func (fr *fieldReader) read(field string, dst []byte) bool {
	if fr.err != nil {
		return false
	}
	n, err := io.ReadFull(fr.r, dst)
	if err != nil {
		fr.err = &ReadError{Field: field, Offset: fr.offset, Want: len(dst), Got: n, Err: err}
		return false
	}
	fr.log.Trace("read field", "field", field, "offset", fr.offset, "bytes", fmt.Sprintf("% x", dst))
	fr.offset += int64(len(dst))
	return true
}

func (fr *fieldReader) uint8(field string) uint8 {
	if !fr.read(field, fr.buf[:1]) {
		return 0
	}
	return fr.buf[0]
}

func (fr *fieldReader) uint16(field string) uint16 {
	if !fr.read(field, fr.buf[:2]) {
		return 0
	}
	return binary.LittleEndian.Uint16(fr.buf[:2])
}

func (fr *fieldReader) uint32(field string) uint32 {
	if !fr.read(field, fr.buf[:4]) {
		return 0
	}
	return binary.LittleEndian.Uint32(fr.buf[:4])
}

// bytes copies exactly len(dst) raw bytes.
func (fr *fieldReader) bytes(field string, dst []byte) {
	fr.read(field, dst)
}
