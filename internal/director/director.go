// Package director implements the coordination core of vericore: it
// constructs the configured set of proof engines, arbitrates their
// findings against a live property roster, and drives the output writer
// and advice store through to a clean shutdown.
package director

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vericore/vericore/pkg/advice"
	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/config"
	"github.com/vericore/vericore/pkg/engine"
	"github.com/vericore/vericore/pkg/engines"
	"github.com/vericore/vericore/pkg/logx"
	"github.com/vericore/vericore/pkg/message"
	"github.com/vericore/vericore/pkg/metrics"
	"github.com/vericore/vericore/pkg/roster"
	"github.com/vericore/vericore/pkg/solver"
	"github.com/vericore/vericore/pkg/writer"
)

// Exit codes per spec.md §6.
const (
	ExitSuccess           = 0
	ExitUncaughtException = 1
	ExitIVCException      = 2
)

const (
	supervisionInterval = 100 * time.Millisecond
	shutdownSettleDelay = 50 * time.Millisecond
	endOfText           = 0x03
	mailboxCapacity     = 256
)

// Deps bundles the solver-driven capabilities concrete engines call into.
// All reasoning behind them is out of scope for this module (spec.md §1);
// pkg/solver ships stub implementations so a Director can be constructed
// and exercised without a real SMT backend attached.
type Deps struct {
	Backend         solver.Backend
	InvariantSource solver.InvariantSource
	IVCSource       solver.IVCSource
}

// Director is the coordination core described in spec.md. It owns the
// property roster, the per-engine unknown trackers, the inductive
// counterexample store, the output writer, and the fixed engine set built
// from configuration.
type Director struct {
	cfg config.Config

	// RunID identifies this run in the Director's start-of-run log line,
	// the way the teacher repo stamps each coder session with a fresh uuid
	// (pkg/coder/claude).
	RunID string

	userSpec     *analysis.UserSpec
	analysisSpec *analysis.Spec

	rost     *roster.Roster
	unknown  *roster.UnknownTracker
	cexStore *roster.InductiveCexStore
	baseStep int

	startTime time.Time

	mailbox chan message.Message

	wr          writer.Writer
	adviceRead  advice.Store
	adviceWrite advice.Store

	deps Deps

	engines       []engine.Engine
	enginesByDest map[message.Destination]engine.Engine

	logger  *logx.Logger
	metrics *metrics.Recorder

	output strings.Builder

	wg           sync.WaitGroup
	runningCount atomic.Int32
	postClaimed  atomic.Bool
	interrupted  atomic.Bool

	snapshot atomic.Pointer[Snapshot]
}

// New constructs a Director. It opens wr (a writer-open failure is fatal
// and aborts construction, per spec.md §4.3), seeds the unknown trackers
// for every proof engine configuration disables, and seeds the advice
// writer and advice reader (each if configured) with the analysis node's
// variable declarations, which select the advice they share.
func New(
	cfg config.Config,
	userSpec *analysis.UserSpec,
	analysisSpec *analysis.Spec,
	wr writer.Writer,
	deps Deps,
	adviceRead, adviceWrite advice.Store,
	logger *logx.Logger,
	rec *metrics.Recorder,
) (*Director, error) {
	if err := wr.Begin(); err != nil {
		return nil, fmt.Errorf("opening writer: %w", err)
	}

	initial := analysisSpec.Properties

	d := &Director{
		cfg:           cfg,
		RunID:         uuid.New().String(),
		userSpec:      userSpec,
		analysisSpec:  analysisSpec,
		rost:          roster.New(initial),
		unknown:       roster.NewUnknownTracker(),
		cexStore:      roster.NewInductiveCexStore(),
		startTime:     time.Now(),
		mailbox:       make(chan message.Message, mailboxCapacity),
		wr:            wr,
		adviceRead:    adviceRead,
		adviceWrite:   adviceWrite,
		deps:          deps,
		enginesByDest: make(map[message.Destination]engine.Engine),
		logger:        logger,
		metrics:       rec,
	}

	if !cfg.BoundedModelChecking {
		d.unknown.SeedDisabledBMC(initial)
	}
	if !cfg.KInduction {
		d.unknown.SeedDisabledKInduction(initial)
	}
	if !cfg.PDREnabled() {
		d.unknown.SeedDisabledPDR(initial)
	}

	if adviceWrite != nil {
		if err := adviceWrite.Seed(analysisSpec.Node.Vars); err != nil {
			return nil, fmt.Errorf("seeding advice writer: %w", err)
		}
	}
	if adviceRead != nil {
		if err := adviceRead.Seed(analysisSpec.Node.Vars); err != nil {
			return nil, fmt.Errorf("seeding advice reader: %w", err)
		}
	}

	d.publishSnapshot()
	return d, nil
}

// buildEngines constructs the configured engine set in the fixed order
// spec.md §4.4 names: BMC, k-induction, invariant generation, smoothing,
// PDR, advice, IVC reduction, all-IVCs.
func (d *Director) buildEngines() {
	props := d.analysisSpec.Properties

	add := func(e engine.Engine, routable bool) {
		d.engines = append(d.engines, e)
		if routable {
			d.enginesByDest[message.Destination(e.Name())] = e
		}
	}

	if d.cfg.BoundedModelChecking {
		add(engines.NewBMC(d.deps.Backend, props, d.cfg.SmoothCounterexamples, d.mailbox), false)
	}
	if d.cfg.KInduction {
		add(engines.NewKInduction(d.deps.Backend, props, 100, d.cfg.ReduceIVC, d.cfg.AllIVCs, d.mailbox), false)
	}
	if d.cfg.InvariantGeneration {
		add(engines.NewInvGen(d.deps.InvariantSource, d.mailbox), false)
	}
	if d.cfg.SmoothCounterexamples {
		add(engines.NewSmoothing(d.mailbox), true)
	}
	if d.cfg.PDREnabled() {
		add(engines.NewPDR(d.deps.Backend, props, d.cfg.PDRMax, d.cfg.ReduceIVC, d.cfg.AllIVCs, d.mailbox), false)
	}
	if d.cfg.ReadAdvice != "" && d.adviceRead != nil {
		add(engines.NewAdviceIngestion(d.adviceRead, d.mailbox), false)
	}
	if d.cfg.ReduceIVC {
		add(engines.NewIVCReduction(d.deps.IVCSource, d.mailbox), true)
	}
	if d.cfg.AllIVCs {
		add(engines.NewAllIVCs(d.deps.IVCSource, d.mailbox), true)
	}
}

// Run executes the Director's full lifecycle: starting engines, supervising
// until a termination condition fires, running post-processing exactly
// once, and returning the process exit code.
func (d *Director) Run(ctx context.Context) int {
	d.logger.Info("run %s starting: %d propert(y/ies)", d.RunID, len(d.analysisSpec.Properties))
	d.buildEngines()

	interrupt := NewInterruptSource()
	defer interrupt.Close()

	runCtx, cancelEngines := context.WithCancel(ctx)
	defer cancelEngines()

	for _, e := range d.engines {
		d.runningCount.Add(1)
		d.metrics.EngineStarted(string(e.Name()))
		d.wg.Add(1)
		go func(e engine.Engine) {
			defer d.wg.Done()
			defer d.runningCount.Add(-1)
			_ = e.Run(runCtx)
		}(e)
	}

	removeHook := d.installShutdownHook()
	defer removeHook()

	if !d.cfg.XMLToStdout {
		d.output.WriteString(d.preamble())
	}

	for !d.shouldTerminate(interrupt) {
		d.drain()
		time.Sleep(supervisionInterval)
		d.publishSnapshot()
		d.metrics.SupervisionLoopIteration()
	}
	d.drain()

	exitCode := ExitSuccess
	if d.postClaimed.CompareAndSwap(false, true) {
		exitCode = d.postProcess()
	}

	if d.cfg.MiniJKind {
		for _, e := range d.engines {
			e.Stop()
		}
	}

	cancelEngines()
	d.wg.Wait()

	d.emit()
	return exitCode
}

// shouldTerminate evaluates the termination conditions from spec.md §4.4 in
// order. The timeout predicate is `now >= startTime + timeout`, exactly
// spec.md §4.4's `now > startTime + timeout*1000` made inclusive of the
// instant it becomes true: a configured timeout of 0 must fire on the very
// first check (spec.md §8 scenario 6), not be mistaken for "disabled".
//
// A received SIGINT/SIGTERM is observed here rather than acted on directly
// by the signal goroutine: this keeps the supervision goroutine the sole
// mutator of rost/writer state (spec.md §5), since the goroutine that calls
// shouldTerminate is the same one that subsequently runs drain/postProcess.
func (d *Director) shouldTerminate(interrupt InterruptSource) bool {
	if d.interrupted.Load() {
		return true
	}
	if d.cfg.TimeoutEnabled() && time.Since(d.startTime) >= d.cfg.Timeout() {
		return true
	}
	if d.rost.Done() {
		return true
	}
	if len(d.engines) > 0 && d.runningCount.Load() == 0 {
		return true
	}
	for _, e := range d.engines {
		if e.LastError() != nil {
			return true
		}
	}
	return interrupt.Poll()
}

// drain dispatches every message currently queued in the mailbox, without
// blocking for more to arrive.
func (d *Director) drain() {
	for {
		select {
		case m := <-d.mailbox:
			d.metrics.MessageHandled(string(m.Kind()))
			d.route(m)
		default:
			return
		}
	}
}

// route delivers m to the Director's own handler, and for routable kinds
// whose itinerary still names a further destination, also to that
// destination engine, which republishes the advanced message itself.
func (d *Director) route(m message.Message) {
	switch v := m.(type) {
	case message.Valid:
		d.HandleValid(v)
		if dest, ok := v.Itinerary.NextDestination(); ok {
			if eng, ok := d.enginesByDest[dest]; ok {
				eng.HandleValid(v)
			}
		}
	case message.Invalid:
		d.HandleInvalid(v)
		if dest, ok := v.Itinerary.NextDestination(); ok {
			if eng, ok := d.enginesByDest[dest]; ok {
				eng.HandleInvalid(v)
			}
		}
	default:
		message.Dispatch(d, m)
	}
}

// broadcast delivers m to the Director's own handler, then to every
// registered engine's handler, in registration order (spec.md §4.4.7).
func (d *Director) broadcast(m message.Message) {
	message.Dispatch(d, m)
	for _, e := range d.engines {
		message.Dispatch(e, m)
	}
}

func (d *Director) runtime() time.Duration {
	return time.Since(d.startTime)
}

// emit prints the accumulated output buffer, then the writer's rendered
// content when the writer buffers in memory (spec.md §6).
func (d *Director) emit() {
	fmt.Print(d.output.String())
	if m, ok := d.wr.(*writer.Memory); ok {
		fmt.Print(m.String())
	}
}
