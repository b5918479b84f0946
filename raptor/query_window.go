package raptor

import "sort"

// windowCandidate is one (access stop, route, departure) triple
// considered for a time-window query.
type windowCandidate struct {
	access         *InitialStop
	routeStopIndex int
	departureIndex int
	boardingTime   float64
	costOffset     float64
}

/**
 * CalcRoutes is the time-window query: it enumerates every feasible
 * (access stop, route, departure) triple whose boarding time falls in
 * `[earliestDepTime, latestDepTime]`, runs a full RAPTOR search per
 * candidate seeded from that single departure, and accumulates the
 * distinct results before the dominance filter removes any alternative
 * another result strictly beats.
 */
func (e *Engine) CalcRoutes(earliestDepTime, desiredDepTime, latestDepTime float64, fromFacility, toFacility int, accessStops, egressStops []InitialStop, params RaptorParameters) []RaptorRoute {
	graph := e.graph

	// desiredDepTime is part of the interface but plays no role in
	// ranking here: candidate ordering is driven entirely by costOffset.
	_ = desiredDepTime

	var candidates []windowCandidate
	for i := range accessStops {
		acc := &accessStops[i]
		for _, rs := range graph.RouteStopsAtStopFacility(acc.StopFacilityIndex) {
			rsView := graph.RouteStop(rs)
			route := graph.Route(rsView.TransitRouteIndex)
			if rs == route.IndexFirstRouteStop+route.CountRouteStops-1 {
				// a route's last stop can't be boarded.
				continue
			}
			for d := 0; d < route.CountDepartures; d++ {
				depIdx := route.IndexFirstDeparture + d
				boardingTime := graph.Departure(depIdx) + rsView.DepartureOffset
				if boardingTime < earliestDepTime || boardingTime > latestDepTime {
					continue
				}
				costOffset := (boardingTime - earliestDepTime) * params.MarginalUtilityOfWaitingPt_utl_s
				candidates = append(candidates, windowCandidate{
					access:         acc,
					routeStopIndex: rs,
					departureIndex: depIdx,
					boardingTime:   boardingTime,
					costOffset:     costOffset,
				})
			}
		}
	}

	// sorted by (costOffset + accessCost) ascending, processed
	// descending (highest artificial cost first), tie-broken by
	// descending departure index. costOffset carries the sign of the
	// waiting utility, so with the usual negative utility the earliest
	// boardings are processed first.
	sort.Slice(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		vi := ci.costOffset + ci.access.AccessCost
		vj := cj.costOffset + cj.access.AccessCost
		if vi != vj {
			return vi < vj
		}
		return ci.departureIndex < cj.departureIndex
	})

	e.logger.Debug().
		Int("fromFacility", fromFacility).
		Int("toFacility", toFacility).
		Int("candidates", len(candidates)).
		Msg("calcRoutes")

	maxTransfers := defaultMaxTransfers
	var results []RaptorRoute
	haveLastRoot := false
	var lastRootRouteStop, lastRootDeparture int

	for i := len(candidates) - 1; i >= 0; i-- {
		cand := candidates[i]

		// dedup-by-root: since each run is seeded from exactly one
		// (route-stop, departure) pair, that pair *is* the root's
		// identity -- comparing it against the previously accepted
		// result's root substitutes for comparing the root PathElement
		// itself, which cannot be compared across runs once the arena
		// has been reset (see DESIGN.md).
		if haveLastRoot && cand.routeStopIndex == lastRootRouteStop && cand.departureIndex == lastRootDeparture {
			continue
		}

		terminal, ok := e.runWindowCandidate(cand, egressStops, params, maxTransfers)
		if !ok {
			continue
		}

		rootID := e.rootOf(terminal)
		root := e.state.arena.get(rootID)

		route := e.reconstructRoute(terminal)
		transferCount := e.state.arena.get(terminal).transferCount
		maxTransfers = min(maxTransfers, transferCount+defaultMaxTransfersAfterFirstArrival)

		route.departureTime = floorToSecond(root.arrivalTime - graph.MinimalTransferTime() - cand.access.AccessTime)
		route.ArrivalCost -= cand.costOffset
		results = append(results, route)

		haveLastRoot = true
		lastRootRouteStop = cand.routeStopIndex
		lastRootDeparture = cand.departureIndex
	}

	return filterAlternatives(results)
}

// runWindowCandidate seeds exactly one (route-stop, departure) pair as
// the sole initial PathElement and runs the round loop with the
// non-strict transfer comparator.
func (e *Engine) runWindowCandidate(cand windowCandidate, egressStops []InitialStop, params RaptorParameters, maxTransfers int) (pathElementID, bool) {
	state := e.state
	graph := e.graph
	state.reset()

	for i := range egressStops {
		eg := &egressStops[i]
		for _, rs := range graph.RouteStopsAtStopFacility(eg.StopFacilityIndex) {
			state.destinationRouteStops.add(rs)
			if eg.AccessCost < state.egressCostAtRouteStop[rs] {
				state.egressCostAtRouteStop[rs] = eg.AccessCost
			}
		}
	}

	rsView := graph.RouteStop(cand.routeStopIndex)
	boardingCost := cand.access.AccessCost + cand.costOffset
	pe := newAccessPathElement(cand.routeStopIndex, cand.boardingTime, boardingCost, cand.access.Distance, cand.access)
	id := state.arena.new(pe)
	state.arrivalPathPerRouteStop[cand.routeStopIndex] = id
	state.leastArrivalCostAtRouteStop[cand.routeStopIndex] = pe.totalCost()
	state.improvedRouteStops.add(cand.routeStopIndex)

	stopFacility := rsView.StopFacilityIndex
	state.arrivalPathPerStop[stopFacility] = id
	state.leastArrivalCostAtStop[stopFacility] = pe.totalCost()
	state.improvedStops.add(stopFacility)
	e.checkForBestArrival(cand.routeStopIndex, pe.totalCost())

	for round := 0; round < maxTransfers; round++ {
		if state.improvedRouteStops.isEmpty() {
			break
		}
		e.exploreRoutes(params)
		state.improvedRouteStops.clear()
		state.reachedRouteStops.clear()

		if state.improvedStops.isEmpty() {
			break
		}
		e.relaxTransfers(params, false)
		state.improvedStops.clear()
	}

	return e.findLeastCostArrival(egressStops)
}

func (e *Engine) rootOf(id pathElementID) pathElementID {
	for {
		pe := e.state.arena.get(id)
		if pe.comingFrom == noPathElement {
			return id
		}
		id = pe.comingFrom
	}
}
