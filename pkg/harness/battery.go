package harness

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fin-tools/descuento/pkg/runtime/terminal"
	"github.com/fin-tools/descuento/pkg/services/discount"
)

// Battery returns the fixed verification cases in execution order:
// calculator identities and rejections first, then the CLI driver exercised
// with injected argument lists and in-memory streams.
func Battery() []Case {
	return []Case{
		{Name: "descuento_basico", Run: func() error {
			return expectCompute(100.0, 10.0, 90.0, 0)
		}},
		{Name: "descuento_cero", Run: func() error {
			return expectCompute(100.0, 0.0, 100.0, 0)
		}},
		{Name: "descuento_completo", Run: func() error {
			return expectCompute(100.0, 100.0, 0.0, 0)
		}},
		{Name: "importe_decimal", Run: func() error {
			return expectCompute(99.99, 15.0, 84.99, 0.01)
		}},
		{Name: "descuento_decimal", Run: func() error {
			return expectCompute(100.0, 12.5, 87.5, 0)
		}},
		{Name: "importe_negativo", Run: func() error {
			return expectRejected(-100.0, 10.0, discount.InvalidAmount)
		}},
		{Name: "descuento_negativo", Run: func() error {
			return expectRejected(100.0, -10.0, discount.InvalidPercentage)
		}},
		{Name: "descuento_mayor_cien", Run: func() error {
			return expectRejected(100.0, 150.0, discount.InvalidPercentage)
		}},
		{Name: "cli_argumentos_validos", Run: func() error {
			exit, stdout, stderr := runCLI("100", "10")
			if exit != 0 {
				return fmt.Errorf("exit code = %d, want 0 (stderr: %q)", exit, stderr)
			}
			if !strings.Contains(stdout, "90.0") {
				return fmt.Errorf("stdout = %q, want it to contain 90.0", stdout)
			}
			return nil
		}},
		{Name: "cli_argumentos_insuficientes", Run: func() error {
			exit, stdout, stderr := runCLI("100")
			if exit != 1 {
				return fmt.Errorf("exit code = %d, want 1", exit)
			}
			if stdout != "" {
				return fmt.Errorf("stdout = %q, want empty", stdout)
			}
			if !strings.Contains(stderr, "Usage:") {
				return fmt.Errorf("stderr = %q, want usage text", stderr)
			}
			return nil
		}},
		{Name: "cli_argumentos_invalidos", Run: func() error {
			exit, _, stderr := runCLI("abc", "10")
			if exit != 1 {
				return fmt.Errorf("exit code = %d, want 1", exit)
			}
			if !strings.Contains(stderr, "arguments must be valid numbers") {
				return fmt.Errorf("stderr = %q, want parse error text", stderr)
			}
			return nil
		}},
	}
}

func expectCompute(amount, percentage, want, tolerance float64) error {
	got, err := discount.Compute(amount, percentage)
	if err != nil {
		return fmt.Errorf("compute(%v, %v): %w", amount, percentage, err)
	}
	if tolerance == 0 && got != want {
		return fmt.Errorf("compute(%v, %v) = %v, want %v", amount, percentage, got, want)
	}
	if tolerance > 0 && math.Abs(got-want) > tolerance {
		return fmt.Errorf("compute(%v, %v) = %v, want %v ±%v", amount, percentage, got, want, tolerance)
	}
	return nil
}

func expectRejected(amount, percentage float64, kind discount.ErrorKind) error {
	_, err := discount.Compute(amount, percentage)
	if err == nil {
		return fmt.Errorf("compute(%v, %v) succeeded, want validation error", amount, percentage)
	}
	var verr *discount.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("compute(%v, %v) returned %T, want *discount.ValidationError", amount, percentage, err)
	}
	if verr.Kind != kind {
		return fmt.Errorf("compute(%v, %v) error kind = %d, want %d", amount, percentage, verr.Kind, kind)
	}
	return nil
}

func runCLI(args ...string) (exit int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	cli := terminal.NewCLI(terminal.Options{
		Args:   args,
		Stdout: &out,
		Stderr: &errOut,
	})
	return cli.Execute(), out.String(), errOut.String()
}
