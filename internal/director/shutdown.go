package director

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vericore/vericore/pkg/writer"
)

// installShutdownHook registers the process-wide termination callback
// spec.md §4.5 describes: on SIGINT/SIGTERM, after a brief settling delay,
// it trips d.interrupted. It does not run post-processing itself — that
// stays on the supervision goroutine (shouldTerminate observes the flag),
// so rost and the writer are never mutated from two goroutines at once.
// The returned func must be called once Run exits normally so the signal
// goroutine stops waiting.
func (d *Director) installShutdownHook() func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigCh:
			time.Sleep(shutdownSettleDelay)
			d.interrupted.Store(true)
		case <-done:
		}
	}()

	return func() {
		close(done)
		signal.Stop(sigCh)
	}
}

// postProcess is the guaranteed post-processing spec.md §4.5 describes:
// unknown verdicts for anything still remaining, closing the writer,
// flushing the advice writer, and appending the final summary. It must run
// exactly once, guarded by postClaimed in the caller.
func (d *Director) postProcess() int {
	remaining := d.rost.Remaining()
	if len(remaining) > 0 {
		_ = d.wr.WriteUnknown(writer.UnknownRecord{
			Properties:               remaining,
			BaseStep:                 d.baseStep,
			InductiveCounterexamples: d.cexStore.Snapshot(),
			Runtime:                  d.runtime(),
		})
		d.rost.DropUnknown(remaining)
	}

	_ = d.wr.End()

	if d.adviceWrite != nil {
		_ = d.adviceWrite.Flush()
	}

	d.output.WriteString(d.summary())

	return d.computeExitCode()
}

// computeExitCode implements spec.md §6: 0 on success, UNCAUGHT_EXCEPTION
// when an engine reports a fatal error, IVC_EXCEPTION when that error's
// text identifies the IVC subsystem. Timeout alone never changes the exit
// code.
func (d *Director) computeExitCode() int {
	for _, e := range d.engines {
		err := e.LastError()
		if err == nil {
			continue
		}
		if strings.Contains(strings.ToLower(err.Error()), "ivc") {
			return ExitIVCException
		}
		return ExitUncaughtException
	}
	return ExitSuccess
}
