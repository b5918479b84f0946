package raptor

import (
	"math"
	"sort"
)

/**
 * exploreRoutes is one round's route-scan stage. It consumes
 * improvedRouteStops and produces improvements at downstream
 * route-stops and stop-facilities, populating improvedStops.
 *
 * Same shape as textbook RAPTOR's per-stop-time scanning loop (board,
 * walk forward, mark downstream stops), generalised to cost-dominance
 * with a re-boarding switch as the key deviation: a boarded trip may be
 * abandoned mid-route for a cheaper later boarding at the same stop if
 * one becomes available.
 */
func (e *Engine) exploreRoutes(params RaptorParameters) {
	improved := e.state.improvedRouteStops.sortedItems()
	lastRouteIndex := noIndex
	for _, routeStopIndex := range improved {
		if e.state.reachedRouteStops.has(routeStopIndex) {
			// already walked by an earlier improved route-stop of the
			// same route in this round.
			continue
		}
		rs := e.graph.RouteStop(routeStopIndex)
		if rs.TransitRouteIndex == lastRouteIndex {
			continue
		}
		lastRouteIndex = rs.TransitRouteIndex
		e.exploreRoute(rs.TransitRouteIndex, routeStopIndex, params)
	}
}

// exploreRoute scans a single route forward from startPos, the
// earliest improved route-stop of that route this round.
func (e *Engine) exploreRoute(routeIndex int, startPos int, params RaptorParameters) {
	graph := e.graph
	state := e.state
	route := graph.Route(routeIndex)
	routeEnd := route.IndexFirstRouteStop + route.CountRouteStops

	boarded := false
	var predecessor pathElementID
	var departureIndex int
	var boardingTime float64
	var boardingTravelCost float64
	var boardingMode string
	var boardingDistanceAlongRoute float64
	var transferCountAtBoard int
	var firstDepartureTime float64

	// mode lookup is cached per route exploration, not per stop
	var cachedMode string
	var cachedMarginalUtilityOfTravelTime float64
	haveCachedMode := false

	for pos := startPos; pos < routeEnd; pos++ {
		rsPos := graph.RouteStop(pos)
		state.reachedRouteStops.add(pos)

		// ridingTotal is this round's cost of staying aboard through pos
		// on the currently-boarded trip; re-boarding below compares
		// against it, not against leastArrivalCostAtRouteStop[pos] (which
		// may retain a cheaper value from a transfer that this trip
		// didn't beat).
		var ridingTotal float64
		if boarded {
			departureTime := graph.Departure(departureIndex)
			arrivalTimePos := departureTime + rsPos.ArrivalOffset

			if !haveCachedMode || cachedMode != boardingMode {
				cachedMode = boardingMode
				cachedMarginalUtilityOfTravelTime = params.MarginalUtilityOfTravelTime_utl_s(boardingMode)
				haveCachedMode = true
			}

			inVehicleTime := arrivalTimePos - boardingTime
			inVehicleCost := inVehicleTime * (-cachedMarginalUtilityOfTravelTime)
			travelCost := boardingTravelCost + inVehicleCost
			transferCost := (arrivalTimePos - firstDepartureTime) * params.TransferPenaltyTravelTimeToCostFactor * float64(transferCountAtBoard)
			ridingTotal = travelCost + transferCost

			if ridingTotal <= state.leastArrivalCostAtRouteStop[pos] {
				legDistance := rsPos.DistanceAlongRoute - boardingDistanceAlongRoute
				predDistance := 0.0
				if pe := state.arena.get(predecessor); pe != nil {
					predDistance = pe.distance
				}

				newID := state.arena.new(PathElement{
					comingFrom:          predecessor,
					toRouteStop:         pos,
					hasFirstDeparture:   true,
					firstDepartureTime:  firstDepartureTime,
					arrivalTime:         arrivalTimePos,
					arrivalTravelCost:   travelCost,
					arrivalTransferCost: transferCost,
					distance:            predDistance + legDistance,
					transferCount:       transferCountAtBoard,
					isTransfer:          false,
					boardingTime:        boardingTime,
				})
				state.arrivalPathPerRouteStop[pos] = newID
				state.leastArrivalCostAtRouteStop[pos] = ridingTotal

				stopFacility := rsPos.StopFacilityIndex
				if ridingTotal <= state.leastArrivalCostAtStop[stopFacility] {
					state.arrivalPathPerStop[stopFacility] = newID
					state.leastArrivalCostAtStop[stopFacility] = ridingTotal
					state.improvedStops.add(stopFacility)
					e.checkForBestArrival(pos, ridingTotal)
				}
			}
		}

		// (Re)boarding attempt at pos.
		candidateID := state.arrivalPathPerRouteStop[pos]
		if candidateID == noPathElement {
			continue
		}
		pe := state.arena.get(candidateID)
		depIdx, boardTime, ok := findBoardableDeparture(graph, route, rsPos, pe.arrivalTime)
		if !ok {
			continue
		}

		waitCost := -params.MarginalUtilityOfWaitingPt_utl_s * (boardTime - pe.arrivalTime)
		newBoardingTravelCost := pe.arrivalTravelCost + waitCost
		newBoardingTotal := newBoardingTravelCost + pe.arrivalTransferCost

		shouldBoard := false
		if !boarded {
			shouldBoard = true
		} else if newBoardingTotal < ridingTotal {
			shouldBoard = true
		}
		if !shouldBoard {
			continue
		}
		if newBoardingTotal > state.bestArrivalCost {
			return
		}

		boarded = true
		predecessor = candidateID
		departureIndex = depIdx
		boardingTime = boardTime
		boardingTravelCost = newBoardingTravelCost
		boardingMode = rsPos.Mode
		boardingDistanceAlongRoute = rsPos.DistanceAlongRoute
		transferCountAtBoard = pe.transferCount
		if pe.hasFirstDeparture {
			firstDepartureTime = pe.firstDepartureTime
		} else {
			firstDepartureTime = boardingTime
		}
	}
}

// checkForBestArrival is invoked from route exploration and from the
// query drivers' access seeding (transfer relaxation does not call it):
// if routeStopIndex is a destination, total plus its egress cost may
// lower bestArrivalCost.
func (e *Engine) checkForBestArrival(routeStopIndex int, total float64) {
	if !e.state.destinationRouteStops.has(routeStopIndex) {
		return
	}
	withEgress := total + e.state.egressCostAtRouteStop[routeStopIndex]
	if withEgress < e.state.bestArrivalCost {
		e.state.bestArrivalCost = withEgress
	}
}

// findBoardableDeparture binary-searches for the smallest departure d
// such that departures[d] + departureOffset >= agentArrival.
// sort.Search already returns the insertion point directly (no
// "negated insertion point" convention needed in Go) -- an index equal
// to route.CountDepartures means no later departure exists, i.e. this
// boarding is infeasible.
func findBoardableDeparture(graph GraphView, route Route, rs RouteStop, agentArrival float64) (departureIndex int, boardingTime float64, ok bool) {
	key := agentArrival - rs.DepartureOffset
	n := route.CountDepartures
	idx := sort.Search(n, func(i int) bool {
		return graph.Departure(route.IndexFirstDeparture+i) >= key
	})
	if idx >= n {
		return 0, 0, false
	}
	departureIndex = route.IndexFirstDeparture + idx
	departureTime := graph.Departure(departureIndex)
	vehicleArrivalTime := departureTime + rs.ArrivalOffset
	boardingTime = math.Max(agentArrival, vehicleArrivalTime)
	return departureIndex, boardingTime, true
}
