package raptor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/transitraptor/core/internal/fixture"
	"github.com/transitraptor/core/raptor"
)

func TestCalcRoutesNoAccessOrEgressYieldsNoRoutes(t *testing.T) {
	net := buildHeadwayLine(t)
	engine := raptor.NewEngine(net)
	params := demoParams()

	routes := engine.CalcRoutes(8*3600, 8*3600+10*60, 9*3600, 0, 1, nil, nil, params)
	require.Empty(t, routes)

	egressStops := []raptor.InitialStop{{StopFacilityIndex: 1}}
	routes = engine.CalcRoutes(8*3600, 8*3600+10*60, 9*3600, 0, 1, nil, egressStops, params)
	require.Empty(t, routes)

	accessStops := []raptor.InitialStop{{StopFacilityIndex: 0}}
	routes = engine.CalcRoutes(8*3600, 8*3600+10*60, 9*3600, 0, 1, accessStops, nil, params)
	require.Empty(t, routes)
}

// TestCalcLeastCostRouteSameFacilityIsZeroPtWalk covers access and
// egress both landing on the same stop facility: the route found is
// the access-plus-egress walk alone, no ride required.
func TestCalcLeastCostRouteSameFacilityIsZeroPtWalk(t *testing.T) {
	net := buildHeadwayLine(t)
	engine := raptor.NewEngine(net)
	params := demoParams()

	accessStops := []raptor.InitialStop{{StopFacilityIndex: 0, AccessTime: 90, AccessCost: 4}}
	egressStops := []raptor.InitialStop{{StopFacilityIndex: 0, AccessTime: 30, AccessCost: 1}}

	route := engine.CalcLeastCostRoute(8*3600, 0, 0, accessStops, egressStops, params)
	require.NotEmpty(t, route.Legs)
	require.Equal(t, 0, route.GetNumberOfTransfers())
	require.InDelta(t, 5.0, route.ArrivalCost, 1e-9)

	for _, leg := range route.Legs {
		require.NotEqual(t, "pt", fmt.Sprint(leg.Kind))
	}
}

// TestCalcRoutesDegenerateWindowPicksAtMostOneDeparturePerAccessStop
// checks that a zero-width window ([t,t]) admits at most the single
// departure that lands exactly on t, never a second nearby one.
func TestCalcRoutesDegenerateWindowPicksAtMostOneDeparturePerAccessStop(t *testing.T) {
	net := buildHeadwayLine(t)
	engine := raptor.NewEngine(net)
	params := demoParams()

	accessStops := []raptor.InitialStop{{StopFacilityIndex: 0, AccessTime: 120, Distance: 150}}
	egressStops := []raptor.InitialStop{{StopFacilityIndex: 1, AccessTime: 60, Distance: 80}}

	const depart = 8*3600 + 20*60
	routes := engine.CalcRoutes(depart, depart, depart, 0, 1, accessStops, egressStops, params)
	require.Len(t, routes, 1)
}

// TestCalcRoutesAccessAtLastStopOffersNoRideOnThatRoute checks that
// access landing on a route's final stop never produces a boarding
// candidate for it -- a route can't be boarded at its last stop.
func TestCalcRoutesAccessAtLastStopOffersNoRideOnThatRoute(t *testing.T) {
	net := buildHeadwayLine(t)
	engine := raptor.NewEngine(net)
	params := demoParams()

	// stop facility 1 is the headway line's only last stop; access
	// there with no other facility reachable means no route exists.
	accessStops := []raptor.InitialStop{{StopFacilityIndex: 1, AccessTime: 60}}
	egressStops := []raptor.InitialStop{{StopFacilityIndex: 0, AccessTime: 60}}

	routes := engine.CalcRoutes(8*3600, 8*3600+30*60, 9*3600, 1, 0, accessStops, egressStops, params)
	require.Empty(t, routes)
}

func TestCalcLeastCostRouteIsIdempotent(t *testing.T) {
	net := buildTwoRouteNetwork(t)
	engine := raptor.NewEngine(net)
	params := demoParams()

	accessStops := []raptor.InitialStop{{StopFacilityIndex: 0, AccessTime: 120, Distance: 150}}
	egressStops := []raptor.InitialStop{{StopFacilityIndex: 1, AccessTime: 60, Distance: 80}}

	first := engine.CalcLeastCostRoute(7*3600+45*60, 0, 1, accessStops, egressStops, params)
	second := engine.CalcLeastCostRoute(7*3600+45*60, 0, 1, accessStops, egressStops, params)

	require.Equal(t, first.ArrivalCost, second.ArrivalCost)
	require.Equal(t, first.GetNumberOfTransfers(), second.GetNumberOfTransfers())
	require.Equal(t, len(first.Legs), len(second.Legs))
}

// TestBuilderValidation exercises the fixture Builder's error paths,
// independent of any engine query.
func TestBuilderValidation(t *testing.T) {
	t.Run("AddRouteStop without BeginRoute", func(t *testing.T) {
		b := fixture.NewBuilder()
		_, err := b.AddRouteStop(0, 0, 0, 0, "bus", "l", "r", "rs")
		require.Error(t, err)
	})

	t.Run("AddRouteStop with negative facility index", func(t *testing.T) {
		b := fixture.NewBuilder()
		b.BeginRoute([]float64{0})
		_, err := b.AddRouteStop(-1, 0, 0, 0, "bus", "l", "r", "rs")
		require.Error(t, err)
	})

	t.Run("AddTransfer from a route-stop that isn't the last one added", func(t *testing.T) {
		b := fixture.NewBuilder()
		b.BeginRoute([]float64{0})
		first, err := b.AddRouteStop(0, 0, 0, 0, "bus", "l", "r", "rs0")
		require.NoError(t, err)
		_, err = b.AddRouteStop(1, 0, 0, 0, "bus", "l", "r", "rs1")
		require.NoError(t, err)
		err = b.AddTransfer(first, first, 0, 0, 0)
		require.Error(t, err)
	})

	t.Run("AddTransfer to an unknown route-stop", func(t *testing.T) {
		b := fixture.NewBuilder()
		b.BeginRoute([]float64{0})
		last, err := b.AddRouteStop(0, 0, 0, 0, "bus", "l", "r", "rs0")
		require.NoError(t, err)
		err = b.AddTransfer(last, 99, 0, 0, 0)
		require.Error(t, err)
	})

	t.Run("Build with no routes", func(t *testing.T) {
		b := fixture.NewBuilder()
		_, err := b.Build()
		require.Error(t, err)
	})

	t.Run("Build closes a still-open route", func(t *testing.T) {
		b := fixture.NewBuilder()
		b.BeginRoute([]float64{0})
		_, err := b.AddRouteStop(0, 0, 0, 0, "bus", "l", "r", "rs0")
		require.NoError(t, err)
		net, err := b.Build()
		require.NoError(t, err)
		require.Equal(t, 1, net.RouteCount())
	})
}
