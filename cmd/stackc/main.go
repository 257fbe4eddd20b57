// Command stackc is the CLI front end for the stack-language compiler
// and simulator: `stackc sim <file>` interprets a program directly,
// `stackc com <file>` lowers it to C++ and invokes a host C++
// compiler, optionally running the result.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jhallock/stackc/compiler"
	"github.com/jhallock/stackc/errs"
	"github.com/jhallock/stackc/internal/config"
	"github.com/jhallock/stackc/internal/toolchain"
)

// Exit codes: 0 success, 1 language error (parse/semantic/simulation),
// 2 I/O or toolchain error.
const (
	exitOK       = 0
	exitLangErr  = 1
	exitDriverIO = 2
)

var (
	debugFlag   bool
	verboseFlag bool
	configFlag  string
	log         = logrus.StandardLogger()
)

func main() {
	root := &cobra.Command{
		Use:   "stackc",
		Short: "Compiler and simulator for a small stack-oriented language",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
			os.Exit(exitLangErr)
		},
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable the simulator's memory dump")
	root.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "log a trace line per executed op")
	root.PersistentFlags().StringVar(&configFlag, "config", "", "path to a TOML config file")

	root.AddCommand(simCmd(), comCmd())

	if err := root.Execute(); err != nil {
		os.Exit(exitDriverIO)
	}
}

func simCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sim <file>",
		Short: "Simulate a program directly",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runSim(args[0]))
		},
	}
}

func comCmd() *cobra.Command {
	var run bool
	var output string
	var cxx string

	cmd := &cobra.Command{
		Use:   "com <file>",
		Short: "Compile a program to C++, build it, and optionally run it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runCom(args[0], output, cxx, run))
		},
	}
	cmd.Flags().BoolVarP(&run, "run", "r", false, "run the built executable afterwards")
	cmd.Flags().StringVarP(&output, "output", "o", "a.out", "path to write the built executable")
	cmd.Flags().StringVar(&cxx, "cxx", "", "override the configured host C++ compiler")
	return cmd
}

func runSim(path string) int {
	c := compiler.New(path)
	c.SetDebug(debugFlag)
	c.SetVerbose(verboseFlag)

	if err := c.Load(); err != nil {
		return reportErr(err)
	}
	if err := c.Simulate(); err != nil {
		return reportErr(err)
	}
	return exitOK
}

func runCom(path, output, cxxOverride string, run bool) int {
	cfg, err := config.Load(configFlag)
	if err != nil {
		log.Error(err)
		return exitDriverIO
	}
	if cxxOverride != "" {
		cfg.Toolchain.CXX = cxxOverride
	}

	c := compiler.New(path)
	c.SetDebug(debugFlag)
	c.SetVerbose(verboseFlag)

	if err := c.Load(); err != nil {
		return reportErr(err)
	}

	src, err := c.GenerateCXX()
	if err != nil {
		return reportErr(err)
	}

	built, err := toolchain.BuildCXX(cfg, src, output)
	if err != nil {
		log.Error(err)
		return exitDriverIO
	}

	if run {
		if err := toolchain.RunBinary(built); err != nil {
			log.Error(err)
			return exitDriverIO
		}
	}
	return exitOK
}

func reportErr(err error) int {
	switch err.(type) {
	case *errs.ParseError, *errs.SemanticError, *errs.SimulationError:
		fmt.Fprintln(os.Stderr, err)
		return exitLangErr
	default:
		log.Error(err)
		return exitDriverIO
	}
}
