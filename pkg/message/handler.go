package message

// Handler is implemented by anything that receives messages: the Director
// and every engine. Dispatch is by variant rather than by open
// polymorphism, matching the closed Kind enumeration in message.go.
type Handler interface {
	HandleValid(Valid)
	HandleInvalid(Invalid)
	HandleInductiveCounterexample(InductiveCounterexample)
	HandleUnknown(Unknown)
	HandleBaseStep(BaseStep)
	HandleInvariant(InvariantMessage)
}

// Dispatch routes m to the matching Handler method. Unrecognized kinds are
// silently ignored: the sum type is closed, so this only happens if a
// future variant is added without updating both call sites.
func Dispatch(h Handler, m Message) {
	switch v := m.(type) {
	case Valid:
		h.HandleValid(v)
	case Invalid:
		h.HandleInvalid(v)
	case InductiveCounterexample:
		h.HandleInductiveCounterexample(v)
	case Unknown:
		h.HandleUnknown(v)
	case BaseStep:
		h.HandleBaseStep(v)
	case InvariantMessage:
		h.HandleInvariant(v)
	}
}
