package buffer

// HTMLBuffer accumulates HTML fragments and tracks the total byte length.
//
// The stream driver keeps two of them: the line buffer, reset after every
// resolved line break, and the append-only output buffer.
type HTMLBuffer struct {
	parts  []string
	length int
}

// New creates a new HTMLBuffer.
func New() *HTMLBuffer {
	return &HTMLBuffer{
		parts: make([]string, 0),
	}
}

// Write appends a fragment to the buffer. Empty fragments are skipped.
func (hb *HTMLBuffer) Write(fragment string) {
	if fragment == "" {
		return
	}
	hb.parts = append(hb.parts, fragment)
	hb.length += len(fragment)
}

// Len returns the accumulated length in bytes.
func (hb *HTMLBuffer) Len() int {
	return hb.length
}

// IsEmpty 缓冲区是否为空
func (hb *HTMLBuffer) IsEmpty() bool {
	return hb.length == 0
}

// String returns the accumulated HTML.
func (hb *HTMLBuffer) String() string {
	if len(hb.parts) == 0 {
		return ""
	}
	if len(hb.parts) == 1 {
		return hb.parts[0]
	}
	result := make([]byte, 0, hb.length)
	for _, p := range hb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the buffer.
func (hb *HTMLBuffer) Reset() {
	hb.parts = hb.parts[:0]
	hb.length = 0
}
