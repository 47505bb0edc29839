package supersat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/supersat-go/pkg/supersat/params"
	"github.com/ukaji3/supersat-go/pkg/supersat/plot"
	"github.com/ukaji3/supersat-go/pkg/supersat/recipes"
	"github.com/ukaji3/supersat-go/pkg/supersat/selector"
)

// ErrUnknownColor indicates a colour name outside models.Palette.
var ErrUnknownColor = errors.New("unknown color")

// NotFoundError indicates an operation on an unregistered artifact name.
type NotFoundError = plot.NotFoundError

// PatternError indicates a malformed bulk-operation pattern.
type PatternError = selector.PatternError

// DomainError indicates a physical formula received an out-of-domain input.
type DomainError = params.DomainError

// InvalidArgsError indicates recipe arguments or draw options that cannot be
// used. It carries the offending argument and its 1-based position.
type InvalidArgsError = recipes.ArgError

// UnknownRecipeError indicates a draw request for an unregistered recipe.
type UnknownRecipeError struct {
	Name  string
	Known []string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe %q (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

// RenderError represents a failure to flush a diagram to its surface.
type RenderError struct {
	Diagram string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error on diagram %q: %v", e.Diagram, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(diagram string, err error) *RenderError {
	return &RenderError{
		Diagram: diagram,
		Err:     err,
	}
}
