// Command lc3vm runs LC-3 program images against this module's
// execution core. Loading and the command surface itself are
// deliberately thin: spec.md places both out of scope for the core, so
// this binary exists only to exercise pkg/vm end to end.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/reverset/lc3vm/pkg/lc3"
	"github.com/reverset/lc3vm/pkg/loader"
	"github.com/reverset/lc3vm/pkg/vm"
)

func main() {
	log.SetFlags(0)

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lc3vm",
		Short: "lc3vm runs LC-3 program images (raw binary or textual object format)",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace each step")

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "run an image until it halts or a fatal error occurs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], verbose, false)
		},
	}

	stepCmd := &cobra.Command{
		Use:   "step <file>",
		Short: "single-step an image, tracing after every instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], true, true)
		},
	}

	rootCmd.AddCommand(runCmd, stepCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImage(filename string, verbose, pause bool) error {
	fp, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("lc3vm: %w", err)
	}
	defer fp.Close()

	origin, words, err := loader.Load(fp)
	if err != nil {
		return fmt.Errorf("lc3vm: %w", err)
	}

	machine := vm.NewMachine(os.Stdin, os.Stdout, origin, words)
	for !machine.Halted {
		if verbose {
			word := uint16(machine.ReadMemory(machine.IP))
			log.Printf("lc3vm: ip=0x%04x instr=%016b (%s)", machine.IP, word, lc3.Decode(word).Op)
		}
		if pause {
			log.Print("lc3vm: paused, press enter to continue...")
			fmt.Scanln()
		}
		if err := machine.Step(); err != nil {
			return fmt.Errorf("lc3vm: %w", err)
		}
	}
	return nil
}
