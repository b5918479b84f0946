package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "raptor-query",
	Short:        "Query a synthetic RAPTOR network",
	Long:         "Runs the single-departure and time-window query drivers against a small built-in fixture network",
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the engine's per-query debug line")
	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(windowCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
