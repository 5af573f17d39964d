package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/matty-l/violet/frontend"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Analyze compilation units entered line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := settings(cmd)
			if err != nil {
				return err
			}
			rl, err := readline.New(conf.Dialect + "> ")
			if err != nil {
				return err
			}
			defer rl.Close()
			intp := &Intp{reg: frontend.DefaultRegistry(), conf: conf, repl: rl}
			return intp.REPL()
		},
	}
}

// Intp is our interactive session.
type Intp struct {
	reg  *frontend.Registry
	conf Config
	repl *readline.Instance
}

// REPL starts interactive mode. Lines starting with ':' are commands:
//
//     :dialect NAME   switch to another dialect
//     :quit           leave the session
//
func (intp *Intp) REPL() error {
	pterm.Info.Println(fmt.Sprintf("Violet %s, quit with <ctrl>D", strings.Join(intp.reg.Dialects(), "/")))
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
	return nil
}

// Eval analyzes a line as a compilation unit or executes a command.
// It returns true if the session should end.
func (intp *Intp) Eval(line string) bool {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	opts, err := analysisOptions(intp.conf)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	unit, err := frontend.Analyze(intp.reg, intp.conf.Dialect, line, opts...)
	display(intp.reg, unit)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false
}

func (intp *Intp) command(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "quit", "q":
		return true
	case "dialect":
		if len(args) != 2 {
			pterm.Error.Println("usage: :dialect NAME")
			return false
		}
		if _, err := intp.reg.Lookup(args[1]); err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		intp.conf.Dialect = args[1]
		if intp.repl != nil {
			intp.repl.SetPrompt(args[1] + "> ")
		}
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command :%s", args[0]))
	}
	return false
}
