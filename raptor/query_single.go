package raptor

/**
 * CalcLeastCostRoute answers a single-departure query: mark the egress
 * stops as destinations, seed every access stop as an initial arrival,
 * then alternate route-scan and transfer-relaxation rounds (RAPTOR's
 * namesake shape) until neither stage can improve anything or the
 * round budget runs out, finally reconstructing the least-cost path.
 *
 * The driver loop itself -- reset marks, seed from an origin, round
 * loop calling the scan then the transfer relaxation, stop when
 * nothing improves -- follows the classic RAPTOR shape; tightening the
 * transfer budget once a first arrival is found is a cost-model
 * addition with no counterpart in a pure time-dominance search.
 */
func (e *Engine) CalcLeastCostRoute(depTime float64, fromFacility, toFacility int, accessStops, egressStops []InitialStop, params RaptorParameters) RaptorRoute {
	maxTransfers := defaultMaxTransfers
	state := e.state
	graph := e.graph
	state.reset()

	e.logger.Debug().
		Float64("depTime", depTime).
		Int("fromFacility", fromFacility).
		Int("toFacility", toFacility).
		Msg("calcLeastCostRoute")

	for i := range egressStops {
		eg := &egressStops[i]
		for _, rs := range graph.RouteStopsAtStopFacility(eg.StopFacilityIndex) {
			state.destinationRouteStops.add(rs)
			if eg.AccessCost < state.egressCostAtRouteStop[rs] {
				state.egressCostAtRouteStop[rs] = eg.AccessCost
			}
		}
	}

	for i := range accessStops {
		acc := &accessStops[i]
		for _, rs := range graph.RouteStopsAtStopFacility(acc.StopFacilityIndex) {
			pe := newAccessPathElement(rs, depTime+acc.AccessTime, acc.AccessCost, acc.Distance, acc)
			total := pe.totalCost()
			if total > state.leastArrivalCostAtRouteStop[rs] {
				continue
			}
			id := state.arena.new(pe)
			state.arrivalPathPerRouteStop[rs] = id
			state.leastArrivalCostAtRouteStop[rs] = total
			state.improvedRouteStops.add(rs)

			stopFacility := graph.RouteStop(rs).StopFacilityIndex
			if total <= state.leastArrivalCostAtStop[stopFacility] {
				state.arrivalPathPerStop[stopFacility] = id
				state.leastArrivalCostAtStop[stopFacility] = total
				state.improvedStops.add(stopFacility)
				e.checkForBestArrival(rs, total)
			}
		}
	}

	transfersAfterArrival := -1
	for round := 0; round < maxTransfers; round++ {
		if state.improvedRouteStops.isEmpty() {
			break
		}
		e.exploreRoutes(params)
		state.improvedRouteStops.clear()
		state.reachedRouteStops.clear()

		if transfersAfterArrival == -1 && state.bestArrivalCost < infCost {
			transfersAfterArrival = defaultMaxTransfersAfterFirstArrival
		}

		if state.improvedStops.isEmpty() {
			break
		}
		e.relaxTransfers(params, true)
		state.improvedStops.clear()

		if transfersAfterArrival >= 0 {
			transfersAfterArrival--
			if transfersAfterArrival < 0 {
				break
			}
		}
	}

	terminal, ok := e.findLeastCostArrival(egressStops)
	if !ok {
		return newNoRouteFound()
	}
	return e.reconstructRoute(terminal)
}
