package secure

// Buffer owns a sensitive byte slice for a bounded scope. Release zeroes the
// contents and detaches the slice; it is idempotent, so callers can defer it
// and also release early on the happy path.
type Buffer struct {
	b []byte
}

// NewBuffer takes ownership of b. The caller must not retain b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Bytes returns the live contents, or nil after Release.
func (s *Buffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len reports the length of the live contents.
func (s *Buffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Release zeroes the buffer and drops the reference.
func (s *Buffer) Release() {
	if s == nil || s.b == nil {
		return
	}
	Zero(s.b)
	s.b = nil
}
