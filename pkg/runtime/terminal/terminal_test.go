package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execute(args ...string) (exit int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	cli := NewCLI(Options{
		Args:   args,
		Stdout: &out,
		Stderr: &errOut,
	})
	return cli.Execute(), out.String(), errOut.String()
}

func TestExecute_ValidArguments(t *testing.T) {
	exit, stdout, stderr := execute("100", "10")

	assert.Equal(t, 0, exit)
	assert.Equal(t, "90.0\n", stdout)
	assert.Empty(t, stderr)
}

func TestExecute_DecimalResult(t *testing.T) {
	exit, stdout, _ := execute("99.99", "15")

	assert.Equal(t, 0, exit)
	assert.Contains(t, stdout, "84.99")
}

func TestExecute_WrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{{}, {"100"}, {"100", "10", "extra"}} {
		exit, stdout, stderr := execute(args...)

		assert.Equal(t, 1, exit)
		assert.Empty(t, stdout, "args=%v", args)
		assert.Equal(t, "Usage: descuento <amount> <percentage>\nExample: descuento 100 15\n", stderr)
	}
}

func TestExecute_NonNumericArguments(t *testing.T) {
	for _, args := range [][]string{{"abc", "10"}, {"100", "xyz"}, {"NaN", "10"}} {
		exit, stdout, stderr := execute(args...)

		assert.Equal(t, 1, exit)
		assert.Empty(t, stdout, "args=%v", args)
		assert.Equal(t, "Error: arguments must be valid numbers\n", stderr)
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	scenarios := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"-100", "10"}, "Error: amount cannot be negative\n"},
		{[]string{"100", "-10"}, "Error: percentage cannot be negative\n"},
		{[]string{"100", "150"}, "Error: percentage cannot exceed 100%\n"},
	}

	for _, s := range scenarios {
		exit, stdout, stderr := execute(s.args...)

		assert.Equal(t, 1, exit, "args=%v", s.args)
		assert.Empty(t, stdout, "args=%v", s.args)
		assert.Equal(t, s.wantErr, stderr, "args=%v", s.args)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "90.0", FormatAmount(90))
	assert.Equal(t, "0.0", FormatAmount(0))
	assert.Equal(t, "87.5", FormatAmount(87.5))
	assert.Equal(t, "84.9915", FormatAmount(84.9915))
}
