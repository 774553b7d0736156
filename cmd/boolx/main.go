// Command boolx runs a BoolX source program.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boolx-lang/boolx/internal/config"
	"github.com/boolx-lang/boolx/internal/label"
	"github.com/boolx-lang/boolx/vm"
)

var (
	debugFlag  bool
	configFlag string

	// exitCode carries the process exit status out of RunE, since the
	// zero-arg and too-many-arg cases need different codes than
	// cobra's own error-driven exit would give them.
	exitCode int
)

func main() {
	root := &cobra.Command{
		Use:           "boolx <source-file>",
		Short:         "Run a BoolX program",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVarP(&debugFlag, "debug", "d", false, "run in debug mode")
	root.Flags().StringVar(&configFlag, "config", "", "path to a YAML config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Too many arguments.")
		exitCode = 1
		return nil
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't open the source program file.\n")
		exitCode = 1
		return nil
	}
	defer f.Close()

	labels, err := label.Scan(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't read the source program file.\n")
		exitCode = 1
		return nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fmt.Fprintf(os.Stderr, "Can't read the source program file.\n")
		exitCode = 1
		return nil
	}

	opts := []vm.Option{
		vm.WithDumpDepths(cfg.Debug.CellDumpDepth, cfg.Debug.QueueDumpDepth),
	}
	if debugFlag {
		logger, _ := zap.NewDevelopment()
		opts = append(opts, vm.WithDebug(logger))
	}

	interp := vm.New(f, labels, opts...)
	if runErr := interp.Run(); runErr != nil {
		vm.Report(os.Stderr, runErr)
		exitCode = 1
		return nil
	}

	fmt.Fprintln(os.Stdout)
	exitCode = 0
	return nil
}
