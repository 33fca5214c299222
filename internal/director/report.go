package director

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is a thread-safe, point-in-time view of the Director's roster
// sizes and elapsed runtime, published once per supervision pass so an
// external status query never has to touch roster state directly (spec.md
// §5: roster mutation is confined to the supervision task).
type Snapshot struct {
	Remaining int
	Valid     int
	Invalid   int
	Runtime   time.Duration
}

func (d *Director) publishSnapshot() {
	d.snapshot.Store(&Snapshot{
		Remaining: len(d.rost.Remaining()),
		Valid:     len(d.rost.Valid()),
		Invalid:   len(d.rost.Invalid()),
		Runtime:   d.runtime(),
	})
}

// Snapshot returns the most recently published status snapshot. Safe to
// call from any goroutine, including a concurrent status HTTP handler.
func (d *Director) Snapshot() Snapshot {
	if s := d.snapshot.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}

func (d *Director) preamble() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== vericore: checking %d propert(y/ies) ===\n", len(d.analysisSpec.Properties))
	return b.String()
}

// summary assembles the human-readable final report appended to the
// output buffer by postProcess.
func (d *Director) summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== summary (%.2fs) ===\n", d.runtime().Seconds())
	fmt.Fprintf(&b, "valid:   %s\n", join(d.rost.Valid()))
	fmt.Fprintf(&b, "invalid: %s\n", join(d.rost.Invalid()))
	return b.String()
}

func join(props []string) string {
	if len(props) == 0 {
		return "(none)"
	}
	return strings.Join(props, ", ")
}
