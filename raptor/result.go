package raptor

/**
 * Leg is one segment of an itinerary. PT legs carry the opaque
 * mode/line/route references from the boarding route-stop, not the
 * alighting one -- the same route-stop already drives cost accounting
 * (its mode sets the in-vehicle cost rate).
 */
type Leg struct {
	Kind legKind

	FromStop int // noIndex when not applicable
	ToStop   int

	Line     string
	RouteRef string
	Mode     string

	DepartureTime float64
	TravelTime    float64
	Distance      float64

	PlanElements []PlanElement
}

/**
 * RaptorRoute is the result type: an ordered leg sequence plus the
 * accessors CalcLeastCostRoute/CalcRoutes callers need, distinguishing
 * PT legs from the access/egress/transit walk legs around them.
 */
type RaptorRoute struct {
	Legs []Leg

	// ArrivalCost is the total travel+transfer cost of the itinerary;
	// +Inf and an empty leg list together mean "no route found".
	ArrivalCost float64

	numberOfTransfers int
	departureTime     float64
	hasDepartureTime  bool
	travelTime        float64
}

// newNoRouteFound is the "no route found" result: +Inf arrival cost,
// no legs.
func newNoRouteFound() RaptorRoute {
	return RaptorRoute{ArrivalCost: infCost}
}

func (r *RaptorRoute) addLeg(leg Leg) {
	if !r.hasDepartureTime {
		r.departureTime = leg.DepartureTime
		r.hasDepartureTime = true
	}
	r.travelTime = (leg.DepartureTime + leg.TravelTime) - r.departureTime
	if leg.Kind == legTransitWalk {
		r.numberOfTransfers++
	}
	r.Legs = append(r.Legs, leg)
}

// AddPt appends a PT leg.
func (r *RaptorRoute) AddPt(fromStop, toStop int, line, routeRef, mode string, depTime, travelTime, distance float64) {
	r.addLeg(Leg{
		Kind: legPT, FromStop: fromStop, ToStop: toStop,
		Line: line, RouteRef: routeRef, Mode: mode,
		DepartureTime: depTime, TravelTime: travelTime, Distance: distance,
	})
}

// AddNonPt appends a non-PT (walk) leg. mode is expected to be one of
// "access_walk", "egress_walk", "transit_walk".
func (r *RaptorRoute) AddNonPt(fromStop, toStop int, depTime, travelTime, distance float64, mode string) {
	kind := legTransitWalk
	switch mode {
	case "access_walk":
		kind = legAccessWalk
	case "egress_walk":
		kind = legEgressWalk
	}
	r.addLeg(Leg{
		Kind: kind, FromStop: fromStop, ToStop: toStop,
		Mode: mode, DepartureTime: depTime, TravelTime: travelTime, Distance: distance,
	})
}

// AddPlanElements appends an access/egress leg carrying the caller's
// own opaque plan elements.
func (r *RaptorRoute) AddPlanElements(depTime, travelTime float64, planElements []PlanElement) {
	kind := legAccessWalk
	if r.hasDepartureTime {
		kind = legEgressWalk
	}
	r.addLeg(Leg{
		Kind: kind, FromStop: noIndex, ToStop: noIndex,
		DepartureTime: depTime, TravelTime: travelTime, PlanElements: planElements,
	})
}

func (r RaptorRoute) GetNumberOfTransfers() int { return r.numberOfTransfers }
func (r RaptorRoute) GetDepartureTime() float64 { return r.departureTime }
func (r RaptorRoute) GetTravelTime() float64    { return r.travelTime }

// findLeastCostArrival scans every egress stop, taking the one
// minimising total cost, breaking ties by lower transferCount, and
// returns a new terminal PathElement recording the egress leg. ok is
// false if no egress stop has been reached.
func (e *Engine) findLeastCostArrival(egressStops []InitialStop) (terminal pathElementID, ok bool) {
	state := e.state

	bestTotal := infCost
	bestTransferCount := int(^uint(0) >> 1) // max int
	var bestEgress *InitialStop
	var bestFromID pathElementID = noPathElement
	var bestArrivalTime, bestTravelCost, bestTransferCost, bestDistance float64

	for i := range egressStops {
		eg := &egressStops[i]
		fromID := state.arrivalPathPerStop[eg.StopFacilityIndex]
		if fromID == noPathElement {
			continue
		}
		from := state.arena.get(fromID)

		arrivalTime := from.arrivalTime + eg.AccessTime
		travel := from.arrivalTravelCost + eg.AccessCost
		total := travel + from.arrivalTransferCost

		better := total < bestTotal
		if total == bestTotal && from.transferCount < bestTransferCount {
			better = true
		}
		if !better {
			continue
		}
		bestTotal = total
		bestTransferCount = from.transferCount
		bestEgress = eg
		bestFromID = fromID
		bestArrivalTime = arrivalTime
		bestTravelCost = travel
		bestTransferCost = from.arrivalTransferCost
		bestDistance = from.distance + eg.Distance
	}

	if bestEgress == nil {
		return noPathElement, false
	}

	newID := state.arena.new(PathElement{
		comingFrom:          bestFromID,
		toRouteStop:         noIndex,
		hasFirstDeparture:   false,
		arrivalTime:         bestArrivalTime,
		arrivalTravelCost:   bestTravelCost,
		arrivalTransferCost: bestTransferCost,
		distance:            bestDistance,
		transferCount:       bestTransferCount,
		isTransfer:          true,
		initialStop:         bestEgress,
	})
	return newID, true
}

// reconstructRoute walks the predecessor chain from terminal back to
// the root access element and emits an ordered RaptorRoute. The
// second-to-last chain element is skipped when it is a transfer -- it
// merges into the egress walk instead of becoming its own leg.
// AddPlanElements carries no distance parameter, so the merge is
// purely about leg count, never a distance transfer (see DESIGN.md).
func (e *Engine) reconstructRoute(terminal pathElementID) RaptorRoute {
	state := e.state
	graph := e.graph

	var chain []pathElementID
	for id := terminal; id != noPathElement; {
		chain = append(chain, id)
		id = state.arena.get(id).comingFrom
	}
	// chain is terminal..root; reverse to root..terminal.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	route := RaptorRoute{ArrivalCost: state.arena.get(terminal).totalCost()}
	n := len(chain)
	if n == 0 {
		return newNoRouteFound()
	}

	elem := func(i int) *PathElement { return state.arena.get(chain[i]) }

	root := elem(0)
	route.AddPlanElements(
		root.arrivalTime-root.initialStop.AccessTime,
		root.initialStop.AccessTime,
		root.initialStop.PlanElements,
	)

	skipSecondToLast := n >= 3 && elem(n-2).isTransfer && elem(n-2).toRouteStop != noIndex

	for i := 1; i < n-1; i++ {
		cur := elem(i)
		prev := elem(i - 1)

		if i == n-2 && skipSecondToLast {
			continue
		}

		if cur.isTransfer && cur.toRouteStop != noIndex {
			fromRouteStop := prev.toRouteStop
			fromStop := graph.RouteStop(fromRouteStop).StopFacilityIndex
			toStop := graph.RouteStop(cur.toRouteStop).StopFacilityIndex
			if fromStop == toStop {
				continue
			}
			route.AddNonPt(
				fromStop, toStop,
				prev.arrivalTime, cur.arrivalTime-prev.arrivalTime,
				cur.distance-prev.distance,
				"transit_walk",
			)
			continue
		}

		// PT leg.
		fromRouteStop := prev.toRouteStop
		boardingRouteStop := graph.RouteStop(fromRouteStop)
		toStop := graph.RouteStop(cur.toRouteStop).StopFacilityIndex
		route.AddPt(
			boardingRouteStop.StopFacilityIndex, toStop,
			boardingRouteStop.Line, boardingRouteStop.RouteRef, boardingRouteStop.Mode,
			cur.boardingTime, cur.arrivalTime-cur.boardingTime,
			cur.distance-prev.distance,
		)
	}

	terminalElem := elem(n - 1)
	route.AddPlanElements(
		elem(n-2).arrivalTime,
		terminalElem.initialStop.AccessTime,
		terminalElem.initialStop.PlanElements,
	)

	return route
}
