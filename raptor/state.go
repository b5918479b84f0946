package raptor

import (
	"math"
	"sort"
)

/**
 * indexSet is a bitset-over-a-dense-range plus the order the indices
 * were added in -- a flat-integer-range marking scheme in place of a
 * map[ID]struct{}, with an ascending sort available for the one place
 * (route exploration) that requires visiting improved route-stops in
 * index order.
 */
type indexSet struct {
	present []bool
	items   []int
}

func newIndexSet(size int) indexSet {
	return indexSet{present: make([]bool, size), items: make([]int, 0, 16)}
}

func (s *indexSet) add(i int) {
	if !s.present[i] {
		s.present[i] = true
		s.items = append(s.items, i)
	}
}

func (s *indexSet) has(i int) bool {
	return s.present[i]
}

func (s *indexSet) clear() {
	for _, i := range s.items {
		s.present[i] = false
	}
	s.items = s.items[:0]
}

func (s *indexSet) isEmpty() bool {
	return len(s.items) == 0
}

// sortedItems returns the added indices in ascending order. Route
// exploration relies on this: route-stops of one route are stored
// contiguously and in travel order, so the first index of a given
// route encountered in ascending order is always that route's
// earliest improved position.
func (s *indexSet) sortedItems() []int {
	sort.Ints(s.items)
	return s.items
}

/**
 * SearchState is the engine's mutable scratch block, sized once from
 * the graph view's counts at construction time. reset() is called at
 * the start of every query; nothing here may be read across queries.
 */
type SearchState struct {
	arena pathArena

	arrivalPathPerRouteStop []pathElementID
	arrivalPathPerStop      []pathElementID

	leastArrivalCostAtRouteStop []float64
	leastArrivalCostAtStop      []float64
	egressCostAtRouteStop       []float64

	improvedRouteStops    indexSet
	improvedStops         indexSet
	destinationRouteStops indexSet
	reachedRouteStops     indexSet

	tmpArrivalPathPerStop []pathElementID
	tmpImprovedStops      indexSet

	bestArrivalCost float64
}

// NewSearchState allocates a SearchState sized for the given graph
// view. Construct one per goroutine/thread that will issue queries --
// never share one instance across concurrent queries.
func NewSearchState(graph GraphView) *SearchState {
	routeStopCount := graph.RouteStopCount()
	stopCount := graph.StopFacilityCount()
	s := &SearchState{
		arrivalPathPerRouteStop:     make([]pathElementID, routeStopCount),
		arrivalPathPerStop:          make([]pathElementID, stopCount),
		leastArrivalCostAtRouteStop: make([]float64, routeStopCount),
		leastArrivalCostAtStop:      make([]float64, stopCount),
		egressCostAtRouteStop:       make([]float64, routeStopCount),
		improvedRouteStops:          newIndexSet(routeStopCount),
		improvedStops:               newIndexSet(stopCount),
		destinationRouteStops:       newIndexSet(routeStopCount),
		reachedRouteStops:           newIndexSet(routeStopCount),
		tmpArrivalPathPerStop:       make([]pathElementID, stopCount),
		tmpImprovedStops:            newIndexSet(stopCount),
	}
	s.reset()
	return s
}

// reset puts the state back to its initial condition: +Inf costs,
// none paths, cleared bitsets, +Inf best arrival cost.
func (s *SearchState) reset() {
	s.arena.reset()

	for i := range s.arrivalPathPerRouteStop {
		s.arrivalPathPerRouteStop[i] = noPathElement
		s.leastArrivalCostAtRouteStop[i] = infCost
		s.egressCostAtRouteStop[i] = infCost
	}
	for i := range s.arrivalPathPerStop {
		s.arrivalPathPerStop[i] = noPathElement
		s.leastArrivalCostAtStop[i] = infCost
		s.tmpArrivalPathPerStop[i] = noPathElement
	}

	s.improvedRouteStops.clear()
	s.improvedStops.clear()
	s.destinationRouteStops.clear()
	s.reachedRouteStops.clear()
	s.tmpImprovedStops.clear()

	s.bestArrivalCost = infCost
}

var infCost = math.Inf(1)
