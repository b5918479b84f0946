package main

import (
	"github.com/transitraptor/core/internal/fixture"
)

// buildDemoNetwork assembles a single-line, roughly-15-minute-headway
// network: six departures, each a 10-minute ride from stop facility 0
// to stop facility 1.
func buildDemoNetwork() (*fixture.Network, error) {
	b := fixture.NewBuilder().SetMinimalTransferTime(60)

	departures := []float64{
		7*3600 + 50*60,
		8*3600 + 5*60,
		8*3600 + 20*60,
		8*3600 + 35*60,
		8*3600 + 50*60,
		9*3600 + 5*60,
	}

	b.BeginRoute(departures)
	if _, err := b.AddRouteStop(0, 0, 0, 0, "bus", "local", "route-local", "rs-origin"); err != nil {
		return nil, err
	}
	if _, err := b.AddRouteStop(1, 600, 600, 5000, "bus", "local", "route-local", "rs-dest"); err != nil {
		return nil, err
	}

	return b.Build()
}
