// Package engines supplies minimal, contract-faithful implementations of
// the eight proof engines named in the Director's configuration. None of
// them perform real SMT reasoning — that stays behind the solver.Backend
// interface, an external collaborator — but each is a real goroutine-driven
// loop that turns solver results into message.Message values delivered to
// the Director's mailbox, grounded in the teacher repo's single-goroutine
// agent state-machine shape (pkg/coder, pkg/architect), simplified down to
// one stop channel.
package engines

import (
	"sync"

	"github.com/vericore/vericore/pkg/message"
)

// base implements the bookkeeping every engine shares: its identity, a
// cooperative stop signal, and the last fatal error. Concrete engines embed
// base and implement Run plus whichever message.Handler methods they care
// about; base's own Handle* methods are no-ops so embedders only need to
// override what matters to them.
type base struct {
	name    message.Source
	mailbox chan<- message.Message

	stopOnce sync.Once
	stopCh   chan struct{}

	mu      sync.Mutex
	lastErr error
}

func newBase(name message.Source, mailbox chan<- message.Message) base {
	return base{
		name:    name,
		mailbox: mailbox,
		stopCh:  make(chan struct{}),
	}
}

func (b *base) Name() message.Source { return b.name }

func (b *base) Stop() {
	b.stopOnce.Do(func() { close(b.stopCh) })
}

func (b *base) stopped() <-chan struct{} {
	return b.stopCh
}

func (b *base) setLastError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastErr = err
}

func (b *base) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

func (b *base) publish(m message.Message) {
	select {
	case b.mailbox <- m:
	case <-b.stopCh:
	}
}

// Default no-op Handler implementation; embedders override selectively.
func (b *base) HandleValid(message.Valid)                                           {}
func (b *base) HandleInvalid(message.Invalid)                                       {}
func (b *base) HandleInductiveCounterexample(message.InductiveCounterexample)       {}
func (b *base) HandleUnknown(message.Unknown)                                       {}
func (b *base) HandleBaseStep(message.BaseStep)                                     {}
func (b *base) HandleInvariant(message.InvariantMessage)                            {}
