package repl

import (
	"fmt"
	"strings"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

// colorValue is a pflag.Value restricted to the palette names.
type colorValue string

func (c *colorValue) String() string { return string(*c) }

func (c *colorValue) Set(s string) error {
	if _, ok := models.LookupColor(s); !ok {
		return fmt.Errorf("unknown color %q (available: %s)", s, strings.Join(models.ColorNames(), ", "))
	}
	*c = colorValue(s)
	return nil
}

func (c *colorValue) Type() string { return "color" }
