// Package engine defines the abstract worker contract the Director builds
// its fixed engine set from. Engine algorithms themselves — BMC, k-induction,
// PDR, and the rest — are external collaborators; this package only states
// what the Director may assume about any of them.
package engine

import (
	"context"

	"github.com/vericore/vericore/pkg/message"
)

// Engine is a named unit of work that can be run on its own goroutine,
// receive messages via the embedded message.Handler, be stopped
// cooperatively, and expose any fatal error that ended its run.
type Engine interface {
	message.Handler

	// Name returns the engine's message.Source identity.
	Name() message.Source

	// Run executes the engine until ctx is canceled or Stop is called. It
	// returns the error that ended the run, or nil on a clean stop.
	Run(ctx context.Context) error

	// Stop asks the engine to end its Run cooperatively. Stop must be safe
	// to call multiple times and before Run has returned.
	Stop()

	// LastError returns the fatal error that ended Run, or nil if the
	// engine has not failed (or has not finished).
	LastError() error
}
