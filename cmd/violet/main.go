package main

import (
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	dialectArg string
	traceArg   string
	policyArg  string
)

func main() {
	initDisplay()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := rootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "violet",
		Short:         "Violet front-end for javalite and rubylite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVarP(&dialectArg, "dialect", "d", "", "dialect of the source text")
	root.PersistentFlags().StringVar(&traceArg, "trace", "", "trace level [Debug|Info|Error]")
	root.PersistentFlags().StringVar(&policyArg, "policy", "", "tie-break policy [leftmost-shortest|first-match]")
	root.AddCommand(checkCmd())
	root.AddCommand(replCmd())
	return root
}

// settings merges the config file with flags set on the command line.
func settings(cmd *cobra.Command) (Config, error) {
	conf, err := LoadConfig(cfgFile)
	if err != nil {
		return conf, err
	}
	flags := cmd.Flags()
	if flags.Changed("dialect") {
		conf.Dialect = dialectArg
	}
	if flags.Changed("trace") {
		conf.Trace = traceArg
	}
	if flags.Changed("policy") {
		conf.Policy = policyArg
	}
	if _, err := conf.ForestPolicy(); err != nil {
		return conf, err
	}
	gconf.Initialize(conf)
	setTraceLevel(tracing.TraceLevelFromString(conf.Trace))
	gtrace.CommandTracer.Infof("dialect = %s, policy = %s", conf.Dialect, conf.Policy)
	return conf, nil
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
