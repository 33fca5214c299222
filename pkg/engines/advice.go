package engines

import (
	"context"
	"fmt"

	"github.com/vericore/vericore/pkg/advice"
	"github.com/vericore/vericore/pkg/message"
)

// AdviceIngestion reads persisted invariants once at startup and broadcasts
// them as a single InvariantMessage so other engines can reuse hints
// learned by earlier runs. It settles nothing itself and exits as soon as
// the read completes.
type AdviceIngestion struct {
	base

	store advice.Store
}

// NewAdviceIngestion creates an advice-ingestion engine over store.
func NewAdviceIngestion(store advice.Store, mailbox chan<- message.Message) *AdviceIngestion {
	return &AdviceIngestion{
		base:  newBase(message.SourceAdvice, mailbox),
		store: store,
	}
}

func (e *AdviceIngestion) Run(ctx context.Context) error {
	invariants, err := e.store.Read()
	if err != nil {
		e.setLastError(fmt.Errorf("advice ingestion: %w", err))
		return e.LastError()
	}
	if len(invariants) > 0 {
		e.publish(message.InvariantMessage{Invariants: invariants})
	}
	return nil
}
