// Package message defines the closed set of events engines exchange with
// the Director: proof results, refutations, informational counterexamples,
// give-ups, depth progress, and learned invariants.
package message

// Kind identifies which variant a Message carries.
type Kind string

const (
	KindValid                   Kind = "VALID"
	KindInvalid                 Kind = "INVALID"
	KindInductiveCounterexample Kind = "INDUCTIVE_COUNTEREXAMPLE"
	KindUnknown                 Kind = "UNKNOWN"
	KindBaseStep                Kind = "BASE_STEP"
	KindInvariant               Kind = "INVARIANT"
)

// Source identifies the engine that produced a message. The Director uses
// its own reserved source when it broadcasts messages it originated itself.
type Source string

const (
	SourceDirector     Source = "DIRECTOR"
	SourceBMC          Source = "BMC"
	SourceKInduction   Source = "KIND"
	SourcePDR          Source = "PDR"
	SourceInvGen       Source = "INVGEN"
	SourceSmoothing    Source = "SMOOTHING"
	SourceAdvice       Source = "ADVICE"
	SourceIVCReduction Source = "IVC_REDUCTION"
	SourceAllIVCs      Source = "IVC_REDUCTION_ALL"
)

// Destination names a further engine a routable message should visit before
// it is considered terminal for the Director.
type Destination string

const (
	DestinationIVCReduction Destination = Destination(SourceIVCReduction)
	DestinationAllIVCs      Destination = Destination(SourceAllIVCs)
	DestinationSmoothing    Destination = Destination(SourceSmoothing)
)

// Itinerary is an ordered, immutable sequence of further destinations
// attached to a routable message.
type Itinerary []Destination

// NextDestination returns the head of the itinerary without consuming it.
// The second return value is false when the itinerary is exhausted, meaning
// the message is terminal.
func (it Itinerary) NextDestination() (Destination, bool) {
	if len(it) == 0 {
		return "", false
	}
	return it[0], true
}

// Advance returns a new itinerary with the head destination removed. Calling
// Advance on an exhausted itinerary returns it unchanged.
func (it Itinerary) Advance() Itinerary {
	if len(it) == 0 {
		return it
	}
	rest := make(Itinerary, len(it)-1)
	copy(rest, it[1:])
	return rest
}

// Terminal reports whether the itinerary has been fully consumed.
func (it Itinerary) Terminal() bool {
	return len(it) == 0
}

// Message is the closed sum type of inter-engine events. Concrete variants
// live in variants.go; Kind names the variant, while Dispatch switches on
// the concrete type.
type Message interface {
	Kind() Kind
}
