package engines

import "github.com/vericore/vericore/pkg/message"

// validItinerary mirrors the Director's getValidMessageItinerary: IVC
// reduction first (if enabled), then all-IVCs extraction (if enabled).
// Proof engines that can produce a Valid verdict (k-induction, PDR) build
// their outgoing itinerary with this helper so routing stays in one place.
func validItinerary(reduceIvc, allIvcs bool) message.Itinerary {
	var it message.Itinerary
	if reduceIvc {
		it = append(it, message.DestinationIVCReduction)
	}
	if allIvcs {
		it = append(it, message.DestinationAllIVCs)
	}
	return it
}

// invalidItinerary mirrors the Director's getInvalidMessageItinerary:
// smoothing first (if enabled), otherwise terminal.
func invalidItinerary(smoothing bool) message.Itinerary {
	if smoothing {
		return message.Itinerary{message.DestinationSmoothing}
	}
	return nil
}
