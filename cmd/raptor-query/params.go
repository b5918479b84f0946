package main

import "github.com/transitraptor/core/raptor"

// demoParameters is a plausible, round-number cost model for the demo
// network: waiting costs 0.02 per second, bus riding 0.01 per second,
// any other mode 0.015 per second, and the transfer penalty adds 0.002
// per second of journey per transfer made.
func demoParameters() raptor.RaptorParameters {
	return raptor.NewRaptorParameters(
		-0.02,
		0.002,
		-0.015,
		map[string]float64{"bus": -0.01},
	)
}
