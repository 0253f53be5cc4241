// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "encoding/binary"

// writer is an append-only little-endian byte buffer with natural-alignment
// padding support, used by Dump (§4.6).
type writer struct {
	buf []byte
}

func (w *writer) align(n int) {
	for len(w.buf)%n != 0 {
		w.buf = append(w.buf, 0)
	}
}

func (w *writer) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *writer) u16(v uint16) { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *writer) u32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *writer) u64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }
func (w *writer) i64(v int64)  { w.u64(uint64(v)) }
func (w *writer) bytes(b []byte) { w.buf = append(w.buf, b...) }

// str writes a length-prefixed UTF-8 string per §4.6: lengths 0..127 take
// one byte; longer strings take a 2-byte little-endian value with the low
// byte's high bit set as a continuation marker.
func (w *writer) str(s string) {
	assertf(len(s) <= 32767, "string %q exceeds the 32767-byte limit", s)
	n := len(s)
	if n < 128 {
		w.u8(uint8(n))
	} else {
		w.u8(uint8(n&0x7f) | 0x80)
		w.u8(uint8(n >> 7))
	}
	w.bytes([]byte(s))
}

// reader consumes a byte slice produced by writer, tracking a cursor and
// the first error encountered; once err is set, all further reads are
// no-ops that return zero values, so callers can chain reads and check
// err once at the end (the original's Advance/Consume template shape,
// adapted to Go's lack of exceptions).
type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) fail(msg string) {
	if r.err == nil {
		r.err = newInvalidInput("%s", msg)
	}
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.pos+n > len(r.buf) {
		r.fail("truncated section")
		return false
	}
	return true
}

func (r *reader) align(n int) {
	if r.err != nil {
		return
	}
	for r.pos%n != 0 {
		if !r.need(1) {
			return
		}
		if r.buf[r.pos] != 0 {
			r.fail("non-zero alignment padding")
			return
		}
		r.pos++
	}
}

func (r *reader) u8() uint8 {
	if !r.need(1) {
		return 0
	}
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *reader) u16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) u32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) u64() uint64 {
	if !r.need(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

func (r *reader) i64() int64 { return int64(r.u64()) }

func (r *reader) str() string {
	if r.err != nil {
		return ""
	}
	n := int(r.u8())
	if n&0x80 != 0 {
		hi := r.u8()
		n = int(n&0x7f) | int(hi)<<7
	}
	if !r.need(n) {
		return ""
	}
	s := string(r.buf[r.pos : r.pos+n])
	r.pos += n
	return s
}

func (r *reader) atEnd() bool { return r.err == nil && r.pos == len(r.buf) }
