package raptor

/**
 * relaxTransfers is one round's transfer stage. It consumes
 * improvedStops and relaxes outgoing footpath transfers onto
 * route-stops, honouring the parallel-update discipline: a transfer
 * relaxed from stop A within this round must never be usable as the
 * source of another transfer within the same round via the
 * stop-facility path (that would let transfers chain in-round,
 * breaking the round invariant a synchronous, round-based sweep
 * depends on). The staged tmpArrivalPathPerStop/tmpImprovedStops pair
 * below is what enforces that: writes land there first and only get
 * copied into the live arrays once every improved stop this round has
 * been processed.
 *
 * strict selects the comparator: strict '<' for the single-departure
 * driver, non-strict '<=' for the window driver.
 */
func (e *Engine) relaxTransfers(params RaptorParameters, strict bool) {
	graph := e.graph
	state := e.state

	for _, stopFacility := range state.improvedStops.items {
		fromID := state.arrivalPathPerStop[stopFacility]
		if fromID == noPathElement {
			continue
		}
		// copied, not held as a pointer: state.arena.new below can
		// reallocate the arena's backing slice within this loop.
		from := *state.arena.get(fromID)
		if from.totalCost() > state.bestArrivalCost {
			continue
		}

		toRouteStop := from.toRouteStop
		if toRouteStop == noIndex {
			continue
		}
		fromRouteStop := graph.RouteStop(toRouteStop)
		transferRange := newRangeIterator(fromRouteStop.IndexFirstTransfer, fromRouteStop.CountTransfers)
		for transferRange.HasNext() {
			transfer := graph.Transfer(transferRange.Next())

			newTime := from.arrivalTime + transfer.TransferTime
			newTravel := from.arrivalTravelCost + transfer.TransferCost
			newTransferCount := from.transferCount + 1
			anchor := from.firstDepartureTime
			// a transfer relaxed straight off a pre-boarding access
			// element has no first-departure anchor yet; the penalty
			// term only applies once a trip has actually been boarded.
			var newTransferCost float64
			if from.hasFirstDeparture {
				newTransferCost = (newTime - anchor) * params.TransferPenaltyTravelTimeToCostFactor * float64(newTransferCount)
			}
			newTotal := newTravel + newTransferCost

			improvesRouteStop := newTotal < state.leastArrivalCostAtRouteStop[transfer.ToRouteStop]
			if !strict {
				improvesRouteStop = newTotal <= state.leastArrivalCostAtRouteStop[transfer.ToRouteStop]
			}
			if !improvesRouteStop {
				continue
			}

			newDistance := from.distance + transfer.TransferDistance
			newID := state.arena.new(PathElement{
				comingFrom:          fromID,
				toRouteStop:         transfer.ToRouteStop,
				hasFirstDeparture:   from.hasFirstDeparture,
				firstDepartureTime:  anchor,
				arrivalTime:         newTime,
				arrivalTravelCost:   newTravel,
				arrivalTransferCost: newTransferCost,
				distance:            newDistance,
				transferCount:       newTransferCount,
				isTransfer:          true,
			})
			state.arrivalPathPerRouteStop[transfer.ToRouteStop] = newID
			state.leastArrivalCostAtRouteStop[transfer.ToRouteStop] = newTotal
			state.improvedRouteStops.add(transfer.ToRouteStop)

			toStopFacility := graph.RouteStop(transfer.ToRouteStop).StopFacilityIndex
			improvesStop := newTotal < state.leastArrivalCostAtStop[toStopFacility]
			if !strict {
				improvesStop = newTotal <= state.leastArrivalCostAtStop[toStopFacility]
			}
			if improvesStop {
				// write the cost now, stage the path: parallel-update
				// discipline.
				state.leastArrivalCostAtStop[toStopFacility] = newTotal
				state.tmpArrivalPathPerStop[toStopFacility] = newID
				state.tmpImprovedStops.add(toStopFacility)
			}
		}
	}

	// Parallel update: commit staged stop-facility paths only after
	// every improved stop this round has been processed.
	for _, stopFacility := range state.tmpImprovedStops.items {
		state.arrivalPathPerStop[stopFacility] = state.tmpArrivalPathPerStop[stopFacility]
	}
	state.tmpImprovedStops.clear()
}
