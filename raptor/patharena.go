package raptor

import "math"

// pathElementID indexes into a pathArena. noPathElement (-1) stands in
// for "no predecessor".
type pathElementID int32

/**
 * PathElement is an immutable-once-linked path record. It references
 * its predecessor by arena index rather than by pointer -- a natural
 * replacement for a shared-reference predecessor chain when the whole
 * chain is reset wholesale between queries.
 *
 * boardingTime is internal bookkeeping needed only so result
 * reconstruction can emit a PT leg's departure time without
 * re-deriving it from the graph view a second time. It participates in
 * no cost comparison or invariant.
 */
type PathElement struct {
	comingFrom pathElementID
	toRouteStop int // noIndex when none

	hasFirstDeparture  bool
	firstDepartureTime float64

	arrivalTime          float64
	arrivalTravelCost    float64
	arrivalTransferCost  float64
	distance             float64
	transferCount        int
	isTransfer           bool
	initialStop          *InitialStop

	// internal-only, see doc comment above.
	boardingTime float64
}

func (pe *PathElement) totalCost() float64 {
	return pe.arrivalTravelCost + pe.arrivalTransferCost
}

// pathArena is a per-query, slice-backed allocator for PathElements.
// Reset truncates the slice to zero length but keeps its capacity, so
// a query reuses the previous query's backing array.
type pathArena struct {
	elems []PathElement
}

func (a *pathArena) reset() {
	a.elems = a.elems[:0]
}

func (a *pathArena) new(pe PathElement) pathElementID {
	a.elems = append(a.elems, pe)
	return pathElementID(len(a.elems) - 1)
}

func (a *pathArena) get(id pathElementID) *PathElement {
	if id == noPathElement {
		return nil
	}
	return &a.elems[id]
}

// newAccessPathElement builds the pre-boarding PathElement created for
// every route-stop at an access stop facility.
func newAccessPathElement(toRouteStop int, arrivalTime float64, travelCost float64, distance float64, initialStop *InitialStop) PathElement {
	return PathElement{
		comingFrom:    noPathElement,
		toRouteStop:   toRouteStop,
		hasFirstDeparture: false,
		arrivalTime:       arrivalTime,
		arrivalTravelCost: travelCost,
		arrivalTransferCost: 0,
		distance:          distance,
		transferCount:     0,
		isTransfer:        true,
		initialStop:       initialStop,
		boardingTime:      math.NaN(),
	}
}
