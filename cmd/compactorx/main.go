// Command compactorx strips comments and non-instruction characters
// from a BoolX source file and rewraps the survivors into fixed-width
// lines.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boolx-lang/boolx/internal/config"
)

var (
	lineLengthFlag int
	configFlag     string

	exitCode int
)

func main() {
	root := &cobra.Command{
		Use:           "compactorx <source> <output>",
		Short:         "Compact a BoolX source file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().IntVarP(&lineLengthFlag, "lines", "l", 0, "characters per output line (default 36)")
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
	if len(args) == 1 {
		fmt.Fprintln(os.Stderr, "Missing output file.")
		exitCode = 1
		return nil
	}
	if len(args) > 2 {
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

	lineLength := cfg.Compactor.LineLength
	if cmd.Flags().Changed("lines") {
		lineLength = lineLengthFlag
	}
	if lineLength <= 0 {
		fmt.Fprintln(os.Stderr, "Option '-l' has been given a bad value.")
		exitCode = 1
		return nil
	}

	src, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Can't open the source program file.")
		exitCode = 1
		return nil
	}
	defer src.Close()

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Can't open the output file.")
		exitCode = 1
		return nil
	}
	defer out.Close()

	if err := compact(src, out, lineLength, cfg.Compactor.InstructionSet); err != nil {
		fmt.Fprintln(os.Stderr, "Error while writing to the output file.")
		exitCode = 1
		return nil
	}

	fmt.Fprintln(os.Stdout, "\nDone.")
	exitCode = 0
	return nil
}

// compact implements the compactor's single pass: comment-nesting
// depth is tracked but, unlike the label scanner, never floors at
// zero on a stray `}` — matching the original source's compactor and
// runtime executor, not its label pre-pass (spec.md §9).
func compact(src *os.File, out *os.File, lineLength int, instructionSet string) error {
	kept := make(map[byte]bool, len(instructionSet))
	for _, r := range instructionSet {
		kept[byte(r)] = true
	}

	w := bufio.NewWriter(out)
	r := bufio.NewReader(src)

	var depth int64
	var col int

	for {
		b, err := r.ReadByte()
		if err != nil {
			break
		}

		switch b {
		case '{':
			depth++
			continue
		case '}':
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		if !kept[b] {
			continue
		}

		if err := w.WriteByte(b); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%c", b)
		col++

		if col == lineLength {
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout)
			col = 0
		}
	}

	return w.Flush()
}
