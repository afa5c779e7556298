package terminal

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fin-tools/descuento/pkg/services/discount"

	"github.com/spf13/cobra"
)

const appName = "descuento"

// UsageError reports a wrong number of command-line arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 arguments, got %d", e.Got)
}

// ParseError reports an argument that could not be read as a finite number.
// It is a distinct type from discount.ValidationError so callers never have
// to inspect message text to tell the two apart.
type ParseError struct {
	Arg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argument %q is not a valid number", e.Arg)
}

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
	stdout  io.Writer
	stderr  io.Writer
}

// Options contain configuration for the CLI. Args is the argument list
// without the program name; the streams default to the process streams, so
// tests can substitute in-memory buffers.
type Options struct {
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Args == nil {
		opts.Args = []string{}
	}

	cli := &CLI{
		stdout: opts.Stdout,
		stderr: opts.Stderr,
	}

	cli.rootCmd = cli.newRootCmd(opts.Args)
	return cli
}

// Execute runs the CLI and returns the process exit code: 0 on success, 1 on
// any argument, parse, or validation error.
func (cli *CLI) Execute() int {
	if err := cli.rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (cli *CLI) newRootCmd(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName + " <amount> <percentage>",
		Short: "Apply a percentage discount to an amount",
		Args:  cobra.ArbitraryArgs,
		RunE:  cli.run,
		// The contract fixes what each stream carries, so cobra's own
		// usage and error printing stay off.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	cmd.SetArgs(args)
	cmd.SetOut(cli.stdout)
	cmd.SetErr(cli.stderr)

	return cmd
}

func (cli *CLI) run(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		fmt.Fprintf(cli.stderr, "Usage: %s <amount> <percentage>\n", appName)
		fmt.Fprintf(cli.stderr, "Example: %s 100 15\n", appName)
		return &UsageError{Got: len(args)}
	}

	amount, err := parseNumber(args[0])
	if err == nil {
		var percentage float64
		percentage, err = parseNumber(args[1])
		if err == nil {
			return cli.compute(amount, percentage)
		}
	}

	fmt.Fprintln(cli.stderr, "Error: arguments must be valid numbers")
	return err
}

func (cli *CLI) compute(amount, percentage float64) error {
	result, err := discount.Compute(amount, percentage)
	if err != nil {
		fmt.Fprintf(cli.stderr, "Error: %v\n", err)
		return err
	}

	fmt.Fprintln(cli.stdout, FormatAmount(result))
	return nil
}

func parseNumber(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &ParseError{Arg: arg}
	}
	return v, nil
}

// FormatAmount renders a final amount the way the CLI prints it: minimal
// digits, keeping one decimal place for integral values so 90 prints as
// "90.0" rather than "90".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
