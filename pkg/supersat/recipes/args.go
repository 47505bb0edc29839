package recipes

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrNotANumber indicates an argument that does not parse as a finite
	// float.
	ErrNotANumber = errors.New("not a finite number")
	// ErrTooFewArgs indicates missing arguments.
	ErrTooFewArgs = errors.New("too few arguments")
	// ErrTooManyArgs indicates surplus arguments.
	ErrTooManyArgs = errors.New("too many arguments")
	// ErrOutOfRange indicates a number outside the recipe's accepted range.
	ErrOutOfRange = errors.New("value out of range")
)

// ArgError reports a recipe argument that cannot be used. Position is
// 1-based; 0 refers to an option rather than a positional argument.
type ArgError struct {
	Recipe   string
	Arg      string
	Position int
	Err      error
}

func (e *ArgError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("recipe %q: option %q: %v", e.Recipe, e.Arg, e.Err)
	}
	return fmt.Sprintf("recipe %q: argument %d %q: %v", e.Recipe, e.Position, e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// parseValue parses one recipe argument. Integers are accepted and widened.
func parseValue(s string) (float64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return f, nil
}

// ParseArgs converts the textual arguments of r to numbers and checks arity.
func ParseArgs(r Recipe, args []string) ([]float64, error) {
	if len(args) < r.MinArgs {
		return nil, &ArgError{Recipe: r.Name, Position: len(args) + 1, Err: ErrTooFewArgs}
	}
	if r.MaxArgs >= 0 && len(args) > r.MaxArgs {
		return nil, &ArgError{Recipe: r.Name, Arg: args[r.MaxArgs], Position: r.MaxArgs + 1, Err: ErrTooManyArgs}
	}
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := parseValue(a)
		if err != nil {
			return nil, &ArgError{Recipe: r.Name, Arg: a, Position: i + 1, Err: err}
		}
		values[i] = v
	}
	return values, nil
}

func outOfRange(recipe string, pos int, v float64, constraint string) *ArgError {
	return &ArgError{
		Recipe:   recipe,
		Arg:      strconv.FormatFloat(v, 'g', -1, 64),
		Position: pos,
		Err:      fmt.Errorf("%w: must be %s", ErrOutOfRange, constraint),
	}
}
