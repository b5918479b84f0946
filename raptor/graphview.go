package raptor

/**
 * GraphView is the read-only, index-dense timetable snapshot the core
 * runs against. The core never constructs one itself -- loading and
 * parsing timetables and building the flat graph is an external
 * collaborator's job. All identifiers here are small integers indexing
 * the flat arrays below.
 */
type GraphView interface {
	// RouteCount is the number of routes.
	RouteCount() int
	// Route returns the route at transitRouteIndex.
	Route(transitRouteIndex int) Route
	// RouteStopCount is the number of route-stops across all routes.
	RouteStopCount() int
	// RouteStop returns the route-stop at routeStopIndex.
	RouteStop(routeStopIndex int) RouteStop
	// Departure returns the departure-index'th absolute start-of-route
	// departure time.
	Departure(departureIndex int) float64
	// Transfer returns the transferIndex'th outgoing transfer.
	Transfer(transferIndex int) Transfer
	// RouteStopsAtStopFacility returns every route-stop index located
	// at the given stop facility.
	RouteStopsAtStopFacility(stopFacilityIndex int) []int
	// StopFacilityCount is the number of stop facilities.
	StopFacilityCount() int
	// MinimalTransferTime is the configured minimum dwell time between
	// arriving on one service and boarding the next at the same stop.
	MinimalTransferTime() float64
}

// Route is one transit route's flattened stop and departure ranges.
type Route struct {
	IndexFirstRouteStop int
	CountRouteStops     int
	IndexFirstDeparture int
	CountDepartures     int
}

// RouteStop is one stop on one route. Mode/Line/RouteRef/RouteStopRef
// are opaque references only ever copied through to emitted results,
// never interpreted by the core.
type RouteStop struct {
	TransitRouteIndex  int
	StopFacilityIndex  int
	ArrivalOffset      float64
	DepartureOffset    float64
	DistanceAlongRoute float64
	IndexFirstTransfer int
	CountTransfers     int

	Mode         string
	Line         string
	RouteRef     string
	RouteStopRef string
}

// Transfer is one foot-transfer edge out of a route-stop.
type Transfer struct {
	ToRouteStop      int
	TransferTime     float64
	TransferCost     float64
	TransferDistance float64
}

// PlanElement is an opaque, host-owned blob carried by an InitialStop
// and copied verbatim into a RaptorRoute leg. The core never looks
// inside it.
type PlanElement = any

// InitialStop is an access or egress leg to/from a stop facility,
// supplied by the caller as part of a query.
type InitialStop struct {
	StopFacilityIndex int
	AccessTime        float64
	AccessCost        float64
	Distance          float64
	PlanElements      []PlanElement
}
