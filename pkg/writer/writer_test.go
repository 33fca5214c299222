package writer

import (
	"strings"
	"testing"
	"time"

	"github.com/vericore/vericore/pkg/message"
)

func TestMemoryWriterRendersValidAndInvalid(t *testing.T) {
	m := NewMemory()
	if err := m.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := m.WriteValid(ValidRecord{
		Properties: []string{"p1"},
		Source:     message.SourceBMC,
		K:          3,
		Runtime:    2 * time.Second,
	}); err != nil {
		t.Fatalf("WriteValid: %v", err)
	}
	if err := m.WriteInvalid(InvalidRecord{
		Property: "p2",
		Source:   message.SourcePDR,
		Length:   5,
		Runtime:  3 * time.Second,
	}); err != nil {
		t.Fatalf("WriteInvalid: %v", err)
	}
	if err := m.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	out := m.String()
	if !strings.Contains(out, "VALID") || !strings.Contains(out, "p1") {
		t.Fatalf("expected VALID p1 in output, got: %s", out)
	}
	if !strings.Contains(out, "INVALID") || !strings.Contains(out, "p2") {
		t.Fatalf("expected INVALID p2 in output, got: %s", out)
	}
}

func TestSpreadsheetWriterHeaderAndRows(t *testing.T) {
	var buf strings.Builder
	s := NewSpreadsheet(&buf)
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := s.WriteUnknown(UnknownRecord{Properties: []string{"p1", "p2"}, BaseStep: 5}); err != nil {
		t.Fatalf("WriteUnknown: %v", err)
	}
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 { // header + 2 properties
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
}

func TestXMLWriterProducesWellFormedDocument(t *testing.T) {
	var buf strings.Builder
	x := NewXML(&buf)
	if err := x.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := x.WriteBaseStep(BaseStepRecord{Step: 4, Properties: []string{"p1"}}); err != nil {
		t.Fatalf("WriteBaseStep: %v", err)
	}
	if err := x.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<VericoreReport>") || !strings.Contains(out, "</VericoreReport>") {
		t.Fatalf("expected root element wrapping document, got: %s", out)
	}
	if !strings.Contains(out, "<baseStep") {
		t.Fatalf("expected baseStep element, got: %s", out)
	}
}
