package writer

import (
	"fmt"
	"io"
	"strings"
)

// Console writes human-readable lines to an underlying io.Writer, one terse
// line per event, each prefixed with the elapsed runtime in brackets.
type Console struct {
	out io.Writer
}

// NewConsole creates a Console writer over out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Begin() error {
	_, err := fmt.Fprintln(c.out, "=== vericore: analysis started ===")
	return err
}

func (c *Console) WriteValid(r ValidRecord) error {
	_, err := fmt.Fprintf(c.out, "[%6.2fs] VALID   %s  (k=%d, proved by %s, proof_time=%s)\n",
		r.Runtime.Seconds(), strings.Join(r.Properties, ", "), r.K, r.Source, r.ProofTime)
	if err != nil {
		return err
	}
	if len(r.Invariants) > 0 {
		_, err = fmt.Fprintf(c.out, "           invariants learned: %d\n", len(r.Invariants))
	}
	return err
}

func (c *Console) WriteInvalid(r InvalidRecord) error {
	_, err := fmt.Fprintf(c.out, "[%6.2fs] INVALID %s  (length=%d, refuted by %s)\n",
		r.Runtime.Seconds(), r.Property, r.Length, r.Source)
	return err
}

func (c *Console) WriteUnknown(r UnknownRecord) error {
	_, err := fmt.Fprintf(c.out, "[%6.2fs] UNKNOWN %s  (base_step=%d)\n",
		r.Runtime.Seconds(), strings.Join(r.Properties, ", "), r.BaseStep)
	return err
}

func (c *Console) WriteBaseStep(r BaseStepRecord) error {
	_, err := fmt.Fprintf(c.out, "[%6.2fs] base step %d reached for %s\n",
		r.Runtime.Seconds(), r.Step, strings.Join(r.Properties, ", "))
	return err
}

func (c *Console) End() error {
	_, err := fmt.Fprintln(c.out, "=== vericore: analysis finished ===")
	return err
}
