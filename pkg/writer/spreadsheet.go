package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Spreadsheet writes a flat, importable row-per-event table in the .xls
// filename slot. No spreadsheet-writing library appears anywhere in the
// retrieved corpus (see DESIGN.md), so this writer renders a CSV payload
// stdlib encoding/csv can produce and most spreadsheet tools can import
// directly under an .xls extension.
type Spreadsheet struct {
	w *csv.Writer
}

// NewSpreadsheet creates a Spreadsheet writer over out.
func NewSpreadsheet(out io.Writer) *Spreadsheet {
	return &Spreadsheet{w: csv.NewWriter(out)}
}

func (s *Spreadsheet) Begin() error {
	return s.w.Write([]string{"runtime_s", "kind", "property", "source", "detail"})
}

func (s *Spreadsheet) WriteValid(r ValidRecord) error {
	for _, p := range r.Properties {
		detail := fmt.Sprintf("k=%d proof_time=%s invariants=%d", r.K, r.ProofTime, len(r.Invariants))
		if err := s.w.Write(row(r.Runtime.Seconds(), "VALID", p, string(r.Source), detail)); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *Spreadsheet) WriteInvalid(r InvalidRecord) error {
	detail := fmt.Sprintf("length=%d", r.Length)
	if err := s.w.Write(row(r.Runtime.Seconds(), "INVALID", r.Property, string(r.Source), detail)); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *Spreadsheet) WriteUnknown(r UnknownRecord) error {
	detail := fmt.Sprintf("base_step=%d", r.BaseStep)
	for _, p := range r.Properties {
		if err := s.w.Write(row(r.Runtime.Seconds(), "UNKNOWN", p, "", detail)); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *Spreadsheet) WriteBaseStep(r BaseStepRecord) error {
	detail := fmt.Sprintf("step=%d", r.Step)
	for _, p := range r.Properties {
		if err := s.w.Write(row(r.Runtime.Seconds(), "BASE_STEP", p, "", detail)); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *Spreadsheet) End() error {
	s.w.Flush()
	return s.w.Error()
}

func row(runtime float64, kind, property, source, detail string) []string {
	return []string{fmt.Sprintf("%.3f", runtime), kind, property, source, strings.TrimSpace(detail)}
}
