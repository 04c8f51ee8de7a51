// Package wire writes individual protobuf fields directly into a caller-supplied buffer.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// ErrOutOfSpace is returned when a write does not fit in the remaining buffer.
var ErrOutOfSpace = errors.New("wire: out of space")

// Writer encodes into a fixed buffer. It never grows the buffer.
type Writer struct {
	buf   []byte // written prefix of the caller's buffer
	limit int
}

// NewWriter returns a Writer positioned at the start of buf. Capacity past
// len(buf) is never written.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0:len(buf)], limit: len(buf)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Available returns the number of bytes left in the buffer.
func (w *Writer) Available() int {
	return w.limit - len(w.buf)
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) reserve(n int) error {
	if n > w.Available() {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrOutOfSpace, n, w.Available())
	}
	return nil
}

// WriteInt32 writes a tagged int32 field. Negative values take ten bytes.
func (w *Writer) WriteInt32(num protowire.Number, v int32) error {
	if err := w.reserve(SizeInt32(num, v)); err != nil {
		return err
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, uint64(int64(v)))
	return nil
}

// WriteString writes a tagged, length-delimited string field.
func (w *Writer) WriteString(num protowire.Number, s string) error {
	if err := w.reserve(SizeString(num, s)); err != nil {
		return err
	}
	w.buf = protowire.AppendTag(w.buf, num, protowire.BytesType)
	w.buf = protowire.AppendString(w.buf, s)
	return nil
}

// WriteStringNoTag writes a length-prefixed string without a field tag.
func (w *Writer) WriteStringNoTag(s string) error {
	if err := w.reserve(SizeStringNoTag(s)); err != nil {
		return err
	}
	w.buf = protowire.AppendString(w.buf, s)
	return nil
}

// WriteMessageNoTag writes the fields of m without a tag or length prefix.
// The message is sized only once, by the marshaler itself. When it does not fit,
// ErrOutOfSpace is returned and the unwritten part of the buffer may hold a
// partial encoding.
func (w *Writer) WriteMessageNoTag(m proto.Message) error {
	out, err := proto.MarshalOptions{}.MarshalAppend(w.buf, m)
	if err != nil {
		return fmt.Errorf("wire: write message: %w", err)
	}
	// The buffer's capacity is capped at limit, so an oversized message
	// forces a reallocation that leaves out longer than limit.
	if len(out) > w.limit {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrOutOfSpace, len(out)-len(w.buf), w.Available())
	}
	w.buf = out
	return nil
}

// SizeInt32 returns the encoded size of a tagged int32 field.
func SizeInt32(num protowire.Number, v int32) int {
	return protowire.SizeTag(num) + protowire.SizeVarint(uint64(int64(v)))
}

// SizeString returns the encoded size of a tagged string field.
func SizeString(num protowire.Number, s string) int {
	return protowire.SizeTag(num) + SizeStringNoTag(s)
}

// SizeStringNoTag returns the encoded size of a length-prefixed string.
func SizeStringNoTag(s string) int {
	return protowire.SizeBytes(len(s))
}
