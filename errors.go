package rofdisasm

import "errors"

// Errors returned while loading a ROF unit from a byte stream.
//
// ErrTruncated and ErrNoMore are both surfaced by short reads; they are
// distinguished by how much of the read was satisfied before the stream
// ended (see reader.go), mirroring io.ErrUnexpectedEOF vs io.EOF.
var (
	// ErrNoMore indicates the stream ended cleanly before any bytes of a
	// new ROF header were read. The driver treats this as "no more units
	// in this stream" rather than as a failure.
	ErrNoMore = errors.New("rofdisasm: no more ROF units in stream")

	// ErrBadMagic indicates the 4-byte sync value did not match romSync.
	ErrBadMagic = errors.New("rofdisasm: bad ROF magic")

	// ErrTruncated indicates the stream ended in the middle of a
	// declared field or block.
	ErrTruncated = errors.New("rofdisasm: truncated ROF stream")

	// ErrOverlong indicates a null-terminated name ran past its length
	// limit (symLen for symbols, maxModuleName for the module name)
	// without a terminator.
	ErrOverlong = errors.New("rofdisasm: symbol name too long")
)
