// Package fixture provides a synthetic, hand-assembled implementation
// of raptor.GraphView for tests and the CLI demo -- a stand-in for
// loading and compiling a real timetable into a flat graph view, which
// stays out of scope for this package.
package fixture

import "github.com/transitraptor/core/raptor"

// Network is an in-memory raptor.GraphView built with a Builder,
// collecting routes, route-stops, departures and transfers into the
// same flat-array shape GraphView exposes, rather than wrapping GTFS
// rows behind an interface.
type Network struct {
	routes     []raptor.Route
	routeStops []raptor.RouteStop
	departures []float64
	transfers  []raptor.Transfer

	routeStopsPerStopFacility map[int][]int
	stopFacilityCount         int

	minimalTransferTime float64
}

func (n *Network) RouteCount() int { return len(n.routes) }

func (n *Network) Route(transitRouteIndex int) raptor.Route {
	return n.routes[transitRouteIndex]
}

func (n *Network) RouteStopCount() int { return len(n.routeStops) }

func (n *Network) RouteStop(routeStopIndex int) raptor.RouteStop {
	return n.routeStops[routeStopIndex]
}

func (n *Network) Departure(departureIndex int) float64 {
	return n.departures[departureIndex]
}

func (n *Network) Transfer(transferIndex int) raptor.Transfer {
	return n.transfers[transferIndex]
}

func (n *Network) RouteStopsAtStopFacility(stopFacilityIndex int) []int {
	return n.routeStopsPerStopFacility[stopFacilityIndex]
}

func (n *Network) StopFacilityCount() int { return n.stopFacilityCount }

func (n *Network) MinimalTransferTime() float64 { return n.minimalTransferTime }
