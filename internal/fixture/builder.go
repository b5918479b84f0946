package fixture

import (
	"github.com/pkg/errors"

	"github.com/transitraptor/core/raptor"
)

// Builder assembles a Network one route at a time. Routes must be
// opened with BeginRoute and their route-stops added in travel order,
// since route-stops of the same route are stored contiguously in that
// order; outgoing transfers for a route-stop must be added immediately
// after that route-stop, before the next one, since the underlying
// flat arrays require each route-stop's transfers to be contiguous
// too.
type Builder struct {
	network *Network

	routeOpen           bool
	routeFirstRouteStop int
	routeFirstDeparture int
	lastRouteStopIndex  int
	haveLastRouteStop   bool
}

// NewBuilder starts an empty Network builder.
func NewBuilder() *Builder {
	return &Builder{
		network: &Network{
			routeStopsPerStopFacility: map[int][]int{},
		},
		lastRouteStopIndex: noRouteStop,
	}
}

const noRouteStop = -1

// SetMinimalTransferTime sets the network's minimum dwell time between
// arriving on one service and boarding the next at the same stop.
func (b *Builder) SetMinimalTransferTime(t float64) *Builder {
	b.network.minimalTransferTime = t
	return b
}

// BeginRoute closes any currently-open route and starts a new one with
// the given ascending start-of-route departure times.
func (b *Builder) BeginRoute(departures []float64) *Builder {
	b.closeRoute()
	b.routeFirstRouteStop = len(b.network.routeStops)
	b.routeFirstDeparture = len(b.network.departures)
	b.network.departures = append(b.network.departures, departures...)
	b.routeOpen = true
	b.haveLastRouteStop = false
	return b
}

func (b *Builder) closeRoute() {
	if !b.routeOpen {
		return
	}
	b.network.routes = append(b.network.routes, raptor.Route{
		IndexFirstRouteStop: b.routeFirstRouteStop,
		CountRouteStops:     len(b.network.routeStops) - b.routeFirstRouteStop,
		IndexFirstDeparture: b.routeFirstDeparture,
		CountDepartures:     len(b.network.departures) - b.routeFirstDeparture,
	})
	b.routeOpen = false
}

// AddRouteStop appends a route-stop to the currently open route and
// returns its flat route-stop index, for use as a transfer endpoint.
func (b *Builder) AddRouteStop(stopFacilityIndex int, arrivalOffset, departureOffset, distanceAlongRoute float64, mode, line, routeRef, routeStopRef string) (int, error) {
	if !b.routeOpen {
		return 0, errors.New("AddRouteStop called with no open route, call BeginRoute first")
	}
	if stopFacilityIndex < 0 {
		return 0, errors.Errorf("negative stop facility index %d", stopFacilityIndex)
	}

	routeIndex := len(b.network.routes)
	idx := len(b.network.routeStops)
	b.network.routeStops = append(b.network.routeStops, raptor.RouteStop{
		TransitRouteIndex:  routeIndex,
		StopFacilityIndex:  stopFacilityIndex,
		ArrivalOffset:      arrivalOffset,
		DepartureOffset:    departureOffset,
		DistanceAlongRoute: distanceAlongRoute,
		Mode:               mode,
		Line:               line,
		RouteRef:           routeRef,
		RouteStopRef:       routeStopRef,
	})
	b.network.routeStopsPerStopFacility[stopFacilityIndex] = append(b.network.routeStopsPerStopFacility[stopFacilityIndex], idx)
	if stopFacilityIndex+1 > b.network.stopFacilityCount {
		b.network.stopFacilityCount = stopFacilityIndex + 1
	}
	b.lastRouteStopIndex = idx
	b.haveLastRouteStop = true
	return idx, nil
}

// AddTransfer appends an outgoing transfer from fromRouteStop, which
// must be the most recently added route-stop.
func (b *Builder) AddTransfer(fromRouteStop, toRouteStop int, transferTime, transferCost, transferDistance float64) error {
	if !b.haveLastRouteStop || fromRouteStop != b.lastRouteStopIndex {
		return errors.Errorf("transfer from route-stop %d must be added immediately after that route-stop (last added: %d)", fromRouteStop, b.lastRouteStopIndex)
	}
	if toRouteStop < 0 || toRouteStop >= len(b.network.routeStops) {
		return errors.Errorf("transfer targets unknown route-stop %d", toRouteStop)
	}

	rs := &b.network.routeStops[fromRouteStop]
	if rs.CountTransfers == 0 {
		rs.IndexFirstTransfer = len(b.network.transfers)
	}
	rs.CountTransfers++
	b.network.transfers = append(b.network.transfers, raptor.Transfer{
		ToRouteStop:      toRouteStop,
		TransferTime:     transferTime,
		TransferCost:     transferCost,
		TransferDistance: transferDistance,
	})
	return nil
}

// Build finalises the network, closing any open route.
func (b *Builder) Build() (*Network, error) {
	b.closeRoute()
	if len(b.network.routes) == 0 {
		return nil, errors.New("network has no routes")
	}
	return b.network, nil
}
