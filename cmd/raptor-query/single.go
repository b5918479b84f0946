package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transitraptor/core/raptor"
	raptorlog "github.com/transitraptor/core/raptor/log"
)

var singleDepTime float64

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Run calcLeastCostRoute once against the demo network",
	RunE:  runSingle,
}

func init() {
	singleCmd.Flags().Float64VarP(&singleDepTime, "dep-time", "t", 7*3600+45*60, "Departure time in seconds since midnight")
}

func runSingle(cmd *cobra.Command, args []string) error {
	network, err := buildDemoNetwork()
	if err != nil {
		return err
	}

	engine := raptor.NewEngine(network)
	if verbose {
		engine = engine.WithLogger(raptorlog.Console(0))
	}

	params := demoParameters()
	accessStops := []raptor.InitialStop{{StopFacilityIndex: 0, AccessTime: 120, AccessCost: 0, Distance: 150}}
	egressStops := []raptor.InitialStop{{StopFacilityIndex: 1, AccessTime: 60, AccessCost: 0, Distance: 80}}

	route := engine.CalcLeastCostRoute(singleDepTime, 0, 1, accessStops, egressStops, params)
	printRoute(route)
	return nil
}

func printRoute(route raptor.RaptorRoute) {
	if len(route.Legs) == 0 {
		fmt.Println("no route found")
		return
	}
	fmt.Printf("arrival cost: %.2f, transfers: %d\n", route.ArrivalCost, route.GetNumberOfTransfers())
	for _, leg := range route.Legs {
		fmt.Printf("  %-12s dep=%s travel=%.0fs distance=%.0fm\n", leg.Kind, formatClock(leg.DepartureTime), leg.TravelTime, leg.Distance)
	}
}

func formatClock(t float64) string {
	total := int(t)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
