package writer

import "strings"

// Memory accumulates a Console-style transcript in a strings.Builder. Used
// for embedded (miniJkind) mode and in tests, where callers want the
// rendered content back as a string rather than written to a stream.
type Memory struct {
	inner *Console
	buf   *strings.Builder
}

// NewMemory creates an in-memory writer.
func NewMemory() *Memory {
	var buf strings.Builder
	return &Memory{inner: NewConsole(&buf), buf: &buf}
}

func (m *Memory) Begin() error                      { return m.inner.Begin() }
func (m *Memory) WriteValid(r ValidRecord) error     { return m.inner.WriteValid(r) }
func (m *Memory) WriteInvalid(r InvalidRecord) error { return m.inner.WriteInvalid(r) }
func (m *Memory) WriteUnknown(r UnknownRecord) error { return m.inner.WriteUnknown(r) }
func (m *Memory) WriteBaseStep(r BaseStepRecord) error {
	return m.inner.WriteBaseStep(r)
}
func (m *Memory) End() error { return m.inner.End() }

// String returns everything written so far.
func (m *Memory) String() string {
	return m.buf.String()
}
