package main

import (
	"fmt"
	"os"

	"github.com/epi-tools/covid-atlas/pkg/runtime/terminal"
	"github.com/epi-tools/covid-atlas/pkg/services/source"
	csvsource "github.com/epi-tools/covid-atlas/pkg/services/source/csv"
	duckdbsource "github.com/epi-tools/covid-atlas/pkg/services/source/duckdb"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: source.NewRegistry(map[string]source.StoreFactory{
			"csv":    csvsource.StoreFactory,
			"duckdb": duckdbsource.StoreFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
