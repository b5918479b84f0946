package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transitraptor/core/raptor"
	raptorlog "github.com/transitraptor/core/raptor/log"
)

var (
	windowEarliest float64
	windowDesired  float64
	windowLatest   float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run calcRoutes once against the demo network",
	RunE:  runWindow,
}

func init() {
	windowCmd.Flags().Float64VarP(&windowEarliest, "earliest", "", 8*3600, "Earliest departure time in seconds since midnight")
	windowCmd.Flags().Float64VarP(&windowDesired, "desired", "", 8*3600+30*60, "Desired departure time in seconds since midnight")
	windowCmd.Flags().Float64VarP(&windowLatest, "latest", "", 9*3600, "Latest departure time in seconds since midnight")
}

func runWindow(cmd *cobra.Command, args []string) error {
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

	routes := engine.CalcRoutes(windowEarliest, windowDesired, windowLatest, 0, 1, accessStops, egressStops, params)
	if len(routes) == 0 {
		fmt.Println("no routes found")
		return nil
	}
	for i, route := range routes {
		fmt.Printf("alternative %d:\n", i+1)
		printRoute(route)
	}
	return nil
}
