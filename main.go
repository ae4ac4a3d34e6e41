// Command kestrel runs and assembles programs for the simulated 32-bit
// computer.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/kestrelvm/kestrel/config"
	"github.com/kestrelvm/kestrel/loader"
	"github.com/kestrelvm/kestrel/metrics"
	"github.com/kestrelvm/kestrel/vm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kestrel",
		Short: "A simulator for a small custom 32-bit computer",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newAssembleCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		memorySize uint
		debugMode  bool
		stats      bool
		verbose    bool
		entry      uint32
	)

	cmd := &cobra.Command{
		Use:   "run [source-file]",
		Short: "Assemble and run a program to HALT or fault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if memorySize == 0 {
				memorySize = cfg.Execution.MemorySize
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}

			machine, err := vm.NewVM(int(memorySize))
			if err != nil {
				return err
			}
			if debugMode {
				machine.Debug = os.Stderr
			}

			var tracker *metrics.Tracker
			if stats {
				tracker = metrics.New()
				tracker.Attach(machine.Hooks)
			}

			if err := loader.LoadProgram(machine, string(source), entry); err != nil {
				return fmt.Errorf("assembling: %w", err)
			}

			if verbose {
				fmt.Fprintln(os.Stderr, "initial machine state:")
				spew.Fdump(os.Stderr, machine.CPU)
			}

			runErr := machine.Execute(debugMode)

			if verbose {
				fmt.Fprintln(os.Stderr, "final machine state:")
				spew.Fdump(os.Stderr, machine.CPU)
			}
			if tracker != nil {
				fmt.Println(tracker.Summary())
			}
			return runErr
		},
	}

	cmd.Flags().UintVar(&memorySize, "memory", 0, "memory size in words (defaults to config)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "enable per-instruction trace output")
	cmd.Flags().BoolVar(&stats, "stats", false, "print the cost-metric summary after execution")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "dump CPU state before and after execution")
	cmd.Flags().Uint32Var(&entry, "entry", 0, "address to load the program at")
	return cmd
}

func newAssembleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "assemble [source-file]",
		Short: "Assemble a program into a machine-code word listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}

			words, err := loader.Assemble(string(source))
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			for i, w := range words {
				fmt.Fprintf(out, "%5d: %032b (%d)\n", i, w, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the listing to this file instead of stdout")
	return cmd
}
