package rofdisasm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// byteReader performs big-endian fixed-width reads and bounded
// null-terminated string reads over a seekable byte source.
//
// It distinguishes a clean end of stream from a read that started but
// could not be completed the same way io.ReadFull does: zero bytes
// consumed surfaces as io.EOF, a partial read surfaces as
// io.ErrUnexpectedEOF. Callers translate the former to ErrNoMore only
// at the very first read of a ROF unit; everywhere else a short read is
// ErrTruncated.
type byteReader struct {
	r   io.ReadSeeker
	buf [4]byte
}

func newByteReader(r io.ReadSeeker) *byteReader {
	return &byteReader{r: r}
}

func (b *byteReader) u8() (uint8, error) {
	if _, err := io.ReadFull(b.r, b.buf[:1]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}

func (b *byteReader) u16be() (uint16, error) {
	if _, err := io.ReadFull(b.r, b.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.buf[:2]), nil
}

func (b *byteReader) u32be() (uint32, error) {
	if _, err := io.ReadFull(b.r, b.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.buf[:4]), nil
}

func (b *byteReader) bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// cstr reads bytes up to and including a null terminator, returning the
// bytes before it. It fails with ErrOverlong if max bytes are consumed
// without finding a terminator.
func (b *byteReader) cstr(max int) (string, error) {
	out := make([]byte, 0, 16)
	for len(out) < max {
		c, err := b.u8()
		if err != nil {
			return "", err
		}
		if c == 0 {
			return string(out), nil
		}
		out = append(out, c)
	}
	return "", fmt.Errorf("%w: after %d bytes", ErrOverlong, max)
}

func (b *byteReader) tell() (int64, error) {
	return b.r.Seek(0, io.SeekCurrent)
}

func (b *byteReader) seek(pos int64) error {
	_, err := b.r.Seek(pos, io.SeekStart)
	return err
}
