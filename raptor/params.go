package raptor

/**
 * RaptorParameters carries the cost-model coefficients a query runs
 * with. The caller owns configuration; this core only owns the struct
 * shape, a plain struct rather than a builder or functional-options
 * API. The per-mode travel-time map is unexported, so callers outside
 * this package set it through NewRaptorParameters.
 */
type RaptorParameters struct {
	// MarginalUtilityOfWaitingPt_utl_s is utl/s, expected negative so
	// waiting cost comes out non-negative.
	MarginalUtilityOfWaitingPt_utl_s float64

	// TransferPenaltyTravelTimeToCostFactor scales the transfer-penalty
	// term applied at each foot-transfer.
	TransferPenaltyTravelTimeToCostFactor float64

	// marginalUtilityOfTravelTimeByMode is utl/s per transport mode;
	// DefaultMarginalUtilityOfTravelTime_utl_s is used for any mode not
	// present in the map.
	marginalUtilityOfTravelTimeByMode        map[string]float64
	DefaultMarginalUtilityOfTravelTime_utl_s float64
}

// NewRaptorParameters builds a RaptorParameters with the given
// per-mode marginal utilities of travel time.
func NewRaptorParameters(
	marginalUtilityOfWaitingPt float64,
	transferPenaltyFactor float64,
	defaultMarginalUtilityOfTravelTime float64,
	marginalUtilityOfTravelTimeByMode map[string]float64,
) RaptorParameters {
	byMode := make(map[string]float64, len(marginalUtilityOfTravelTimeByMode))
	for mode, value := range marginalUtilityOfTravelTimeByMode {
		byMode[mode] = value
	}
	return RaptorParameters{
		MarginalUtilityOfWaitingPt_utl_s:         marginalUtilityOfWaitingPt,
		TransferPenaltyTravelTimeToCostFactor:    transferPenaltyFactor,
		marginalUtilityOfTravelTimeByMode:        byMode,
		DefaultMarginalUtilityOfTravelTime_utl_s: defaultMarginalUtilityOfTravelTime,
	}
}

// MarginalUtilityOfTravelTime_utl_s(mode) is queried many times per
// route exploration inner loop -- callers are expected to cache the
// result for the current boarding, not call this per downstream stop.
func (p RaptorParameters) MarginalUtilityOfTravelTime_utl_s(mode string) float64 {
	if v, ok := p.marginalUtilityOfTravelTimeByMode[mode]; ok {
		return v
	}
	return p.DefaultMarginalUtilityOfTravelTime_utl_s
}
