package director

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/config"
	"github.com/vericore/vericore/pkg/logx"
	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/metrics"
	"github.com/vericore/vericore/pkg/roster"
	"github.com/vericore/vericore/pkg/solver"
	"github.com/vericore/vericore/pkg/writer"
)

// recordingWriter captures every call a test needs to assert on, instead of
// parsing a rendered string.
type recordingWriter struct {
	began    bool
	ended    bool
	valids   []writer.ValidRecord
	invalids []writer.InvalidRecord
	unknowns []writer.UnknownRecord
}

func (w *recordingWriter) Begin() error { w.began = true; return nil }
func (w *recordingWriter) WriteValid(r writer.ValidRecord) error {
	w.valids = append(w.valids, r)
	return nil
}
func (w *recordingWriter) WriteInvalid(r writer.InvalidRecord) error {
	w.invalids = append(w.invalids, r)
	return nil
}
func (w *recordingWriter) WriteUnknown(r writer.UnknownRecord) error {
	w.unknowns = append(w.unknowns, r)
	return nil
}
func (w *recordingWriter) WriteBaseStep(writer.BaseStepRecord) error { return nil }
func (w *recordingWriter) End() error                                { w.ended = true; return nil }

func testSpecs() (*analysis.UserSpec, *analysis.Spec) {
	node := analysis.Node{
		Vars:      []analysis.VarDecl{{Name: "x", Type: "int"}},
		Equations: []analysis.Equation{{LHS: "x", RHS: "x + 1"}},
	}
	return &analysis.UserSpec{SourceName: "test", Node: node},
		&analysis.Spec{Properties: []string{"p1", "p2"}, Node: node}
}

func newTestDirector(t *testing.T, cfg config.Config, wr writer.Writer) *Director {
	t.Helper()
	userSpec, analysisSpec := testSpecs()
	deps := Deps{
		Backend:         solver.NewStubBackend(),
		InvariantSource: solver.NewStubInvariantSource(),
		IVCSource:       solver.NewStubIVCSource(),
	}
	d, err := New(cfg, userSpec, analysisSpec, wr, deps, nil, nil, logx.NewLogger("test"), metrics.NewRecorder(prometheus.NewRegistry()))
	require.NoError(t, err)
	return d
}

func TestSingleValid(t *testing.T) {
	cfg := config.Default()
	cfg.BoundedModelChecking = true
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)

	d.route(message.Valid{Source: message.SourceBMC, Properties: []string{"p1"}, K: 3})

	assert.Equal(t, []string{"p1"}, d.rost.Valid())
	assert.Equal(t, []string{"p2"}, d.rost.Remaining())
	require.Len(t, rw.valids, 1)
	assert.Equal(t, 3, rw.valids[0].K)
}

func TestDuplicateValidIgnored(t *testing.T) {
	cfg := config.Default()
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)

	valid := message.Valid{Source: message.SourceBMC, Properties: []string{"p1"}, K: 3}
	d.route(valid)
	d.route(valid)

	require.Len(t, rw.valids, 1)
}

func TestInvalidWithCounterexample(t *testing.T) {
	cfg := config.Default()
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)
	// Override the roster to only track p1, matching the scenario.
	d.rost = roster.New([]string{"p1"})

	d.route(message.Invalid{
		Source:     message.SourceBMC,
		Properties: []string{"p1"},
		Length:     2,
		Model:      message.Model{"x": {"0", "1"}},
	})

	require.Len(t, rw.invalids, 1)
	assert.Equal(t, 2, rw.invalids[0].Length)
	assert.Equal(t, 2, rw.invalids[0].Counterexample.Length)
	assert.Equal(t, []string{"p1"}, d.rost.Invalid())
}

func TestCompletelyUnknownCommit(t *testing.T) {
	cfg := config.Default()
	cfg.BoundedModelChecking = true
	cfg.KInduction = true
	cfg.PDRMax = 1
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)
	d.rost = roster.New([]string{"p1"})

	d.route(message.BaseStep{Step: 5, Properties: []string{"p1"}})
	d.route(message.Unknown{Source: message.SourceBMC, Properties: []string{"p1"}})
	d.route(message.Unknown{Source: message.SourceKInduction, Properties: []string{"p1"}})
	d.route(message.Unknown{Source: message.SourcePDR, Properties: []string{"p1"}})

	require.Len(t, rw.unknowns, 1)
	assert.Equal(t, 5, rw.unknowns[0].BaseStep)
	assert.Equal(t, []string{"p1"}, rw.unknowns[0].Properties)
	assert.True(t, d.rost.Done())
}

func TestItineraryRoutingNoRosterChange(t *testing.T) {
	cfg := config.Default()
	cfg.ReduceIVC = true
	cfg.AllIVCs = true
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)

	d.route(message.Valid{
		Properties: []string{"p1"},
		Itinerary:  message.Itinerary{message.DestinationIVCReduction, message.DestinationAllIVCs},
	})

	assert.Empty(t, rw.valids)
	assert.Equal(t, []string{"p1", "p2"}, d.rost.Remaining())
}

func TestTimeoutSweep(t *testing.T) {
	cfg := config.Default()
	cfg.TimeoutSeconds = 1
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)
	d.startTime = time.Now().Add(-time.Hour)

	code := d.Run(context.Background())

	assert.Equal(t, ExitSuccess, code)
	require.Len(t, rw.unknowns, 1)
	assert.ElementsMatch(t, []string{"p1", "p2"}, rw.unknowns[0].Properties)
	assert.True(t, rw.ended)
}

// TestTimeoutZeroSweepsImmediately covers spec.md §8 scenario 6 literally:
// an explicit timeout of 0, with startTime left untouched, must fire on the
// very first check rather than be treated as "no timeout configured".
func TestTimeoutZeroSweepsImmediately(t *testing.T) {
	cfg := config.Default()
	cfg.TimeoutSeconds = 0
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)

	code := d.Run(context.Background())

	assert.Equal(t, ExitSuccess, code)
	require.Len(t, rw.unknowns, 1)
	assert.ElementsMatch(t, []string{"p1", "p2"}, rw.unknowns[0].Properties)
	assert.Equal(t, 0, rw.unknowns[0].BaseStep)
	assert.True(t, rw.ended)
}

// TestInterruptedFlagTerminatesSupervisionLoop exercises the path installShutdownHook
// drives in production: something outside Run's own goroutine trips
// d.interrupted, and the supervision loop (the only goroutine that touches
// rost and the writer) observes it and runs post-processing itself.
func TestInterruptedFlagTerminatesSupervisionLoop(t *testing.T) {
	cfg := config.Default()
	rw := &recordingWriter{}
	d := newTestDirector(t, cfg, rw)
	d.interrupted.Store(true)

	code := d.Run(context.Background())

	assert.Equal(t, ExitSuccess, code)
	require.Len(t, rw.unknowns, 1)
	assert.ElementsMatch(t, []string{"p1", "p2"}, rw.unknowns[0].Properties)
	assert.True(t, rw.ended)
}
