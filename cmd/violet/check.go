package main

import (
	"fmt"
	"os"

	"github.com/matty-l/violet/frontend"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Analyze source files, one compilation unit per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := settings(cmd)
			if err != nil {
				return err
			}
			return check(frontend.DefaultRegistry(), conf, args)
		},
	}
}

// check analyzes files and displays the results. It returns an error if at
// least one unit could not be analyzed.
func check(reg *frontend.Registry, conf Config, files []string) error {
	opts, err := analysisOptions(conf)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed++
			continue
		}
		pterm.Info.Println(file)
		unit, err := frontend.Analyze(reg, conf.Dialect, string(source), opts...)
		display(reg, unit)
		if err != nil {
			pterm.Error.Println(fmt.Sprintf("%s: %v", file, err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d units failed", failed, len(files))
	}
	return nil
}

func analysisOptions(conf Config) ([]frontend.Option, error) {
	policy, err := conf.ForestPolicy()
	if err != nil {
		return nil, err
	}
	return []frontend.Option{frontend.WithPolicy(policy), frontend.TraceChart(conf.TraceChart)}, nil
}
