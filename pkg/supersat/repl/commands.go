package repl

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ukaji3/supersat-go/pkg/supersat"
	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/params"
)

// Command is one entry of the command registry.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string
	// MinArgs and MaxArgs bound the positional arguments left after flag
	// parsing. MaxArgs -1 means unbounded.
	MinArgs int
	MaxArgs int
	// Verbatim commands keep backslashes in their arguments; quotes still
	// group words.
	Verbatim bool
	// Flags returns a fresh flag set; nil means the command takes no flags.
	Flags func() *pflag.FlagSet
	Run   func(r *REPL, fs *pflag.FlagSet) error
}

func (c *Command) flagSet() *pflag.FlagSet {
	var fs *pflag.FlagSet
	if c.Flags != nil {
		fs = c.Flags()
	} else {
		fs = pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	return fs
}

func (c *Command) arity() string {
	switch {
	case c.MaxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", c.MinArgs)
	case c.MinArgs == c.MaxArgs:
		return fmt.Sprintf("%d argument(s)", c.MinArgs)
	default:
		return fmt.Sprintf("%d to %d argument(s)", c.MinArgs, c.MaxArgs)
	}
}

func builtinCommands() []*Command {
	return []*Command{
		{
			Name:    "draw",
			Aliases: []string{"graph"},
			Usage:   "draw <recipe> [args...] [-c color] [-w width] [-u] [-x T]",
			Summary: "Draw a recipe on the diagrams",
			MinArgs: 1,
			MaxArgs: -1,
			Flags:   drawFlags,
			Run:     runDraw,
		},
		bulkCommand("show", "Show artifacts matching a pattern", (*supersat.Session).Show),
		bulkCommand("hide", "Hide artifacts matching a pattern", (*supersat.Session).Hide),
		bulkCommand("delete", "Delete artifacts matching a pattern", (*supersat.Session).Delete),
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "list [-f all|visible|hidden]",
			Summary: "List artifacts per diagram",
			MaxArgs: 0,
			Flags:   listFlags,
			Run:     runList,
		},
		{
			Name:    "recipes",
			Usage:   "recipes",
			Summary: "List the available recipes",
			MaxArgs: 0,
			Run:     runRecipes,
		},
		{
			Name:    "convert",
			Usage:   "convert <kind> -v value [-T temperature]",
			Summary: "Convert between saturation ratios, pressures and temperatures",
			MinArgs: 1,
			MaxArgs: 1,
			Flags:   convertFlags,
			Run:     runConvert,
		},
		{
			Name:    "help",
			Usage:   "help [command]",
			Summary: "Show commands or the usage of one command",
			MaxArgs: 1,
			Run:     runHelp,
		},
	}
}

func drawFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("draw", pflag.ContinueOnError)
	color := colorValue("")
	fs.VarP(&color, "color", "c", "Curve colour, one of the palette names")
	fs.Float64P("width", "w", 0, "Stroke width")
	fs.BoolP("unlabeled", "u", false, "Do not place inline labels")
	fs.Float64P("label-x", "x", 0, "Temperature in K where labels are anchored")
	return fs
}

func runDraw(r *REPL, fs *pflag.FlagSet) error {
	args := fs.Args()
	width, _ := fs.GetFloat64("width")
	unlabeled, _ := fs.GetBool("unlabeled")
	opts := supersat.DrawOptions{
		Args:      args[1:],
		Color:     fs.Lookup("color").Value.String(),
		Width:     width,
		Unlabeled: unlabeled,
	}
	if fs.Changed("label-x") {
		x, _ := fs.GetFloat64("label-x")
		opts.LabelX = &x
	}

	res, err := r.session.Draw(args[0], opts)
	if err != nil {
		return err
	}
	for _, s := range res.Skipped {
		r.printf("%s: not drawn on %s: %v\n", s.Name, supersat.SecondaryName, s.Err)
	}
	return nil
}

type bulkFunc func(*supersat.Session, string) (*supersat.BulkResult, error)

func bulkCommand(name, summary string, op bulkFunc) *Command {
	run := func(r *REPL, fs *pflag.FlagSet) error {
		res, err := op(r.session, fs.Arg(0))
		if err != nil {
			return err
		}
		for _, m := range res.Matches {
			r.printf("%s %s: %s\n", name, m.Diagram, joinNames(m.Names))
		}
		return nil
	}
	return &Command{
		Name:     name,
		Usage:    name + " <pattern>",
		Summary:  summary,
		MinArgs:  1,
		MaxArgs:  1,
		Verbatim: true,
		Run:      run,
	}
}

func listFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.StringP("filter", "f", string(models.ListAll), "Which artifacts to list: all, visible, hidden")
	return fs
}

func runList(r *REPL, fs *pflag.FlagSet) error {
	raw, _ := fs.GetString("filter")
	filter, err := models.ParseListFilter(raw)
	if err != nil {
		return usagef("%v", err)
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DIAGRAM\tNAME\tKIND\tVISIBLE\tSAMPLES")
	for _, listing := range r.session.List(filter) {
		for _, e := range listing.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\n", listing.Diagram, e.Name, e.Kind, e.Visible, e.Samples)
		}
	}
	return tw.Flush()
}

func runRecipes(r *REPL, _ *pflag.FlagSet) error {
	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECIPE\tUSAGE\tSUMMARY")
	for _, rc := range r.session.Recipes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rc.Name, rc.Usage, rc.Summary)
	}
	return tw.Flush()
}

type conversion struct {
	summary string
	needsT  bool
	unit    string
	convert func(t, v float64) (float64, error)
}

var conversions = map[string]conversion{
	"si2sw":         {"S_i to S_w at T", true, "", params.SiToSw},
	"sw2si":         {"S_w to S_i at T", true, "", params.SwToSi},
	"si2p":          {"S_i to vapour pressure at T", true, "Pa", params.SiToPressure},
	"p2si":          {"vapour pressure in Pa to S_i at T", true, "", params.PressureToSi},
	"frostpoint":    {"frost point of S_i at T", true, "K", params.FrostPoint},
	"dewpoint":      {"dew point in K to S_w at T (Magnus)", true, "", params.DewPointSw},
	"frostpoint-si": {"frost point in K to S_i at T (Magnus)", true, "", params.FrostPointSi},
	"p2frostpoint":  {"vapour pressure in Pa to frost point (Magnus)", false, "K", magnusFrostPoint},
	"k2c":           {"K to °C", false, "°C", kelvinToCelsius},
	"c2k":           {"°C to K", false, "K", celsiusToKelvin},
}

func kelvinToCelsius(_, v float64) (float64, error) { return params.KelvinToCelsius(v), nil }

func celsiusToKelvin(_, v float64) (float64, error) { return params.CelsiusToKelvin(v), nil }

func magnusFrostPoint(_, p float64) (float64, error) { return params.FrostPointMagnus(p) }

func convertFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	fs.Float64P("temperature", "T", 0, "Temperature in K")
	fs.Float64P("value", "v", 0, "Value to convert")
	return fs
}

func conversionKinds() []string {
	kinds := make([]string, 0, len(conversions))
	for k := range conversions {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func runConvert(r *REPL, fs *pflag.FlagSet) error {
	kind := fs.Arg(0)
	c, ok := conversions[kind]
	if !ok {
		return usagef("unknown conversion %q (available: %s)", kind, joinNames(conversionKinds()))
	}
	if !fs.Changed("value") {
		return usagef("convert %s: --value is required", kind)
	}
	if c.needsT && !fs.Changed("temperature") {
		return usagef("convert %s: --temperature is required", kind)
	}
	t, _ := fs.GetFloat64("temperature")
	v, _ := fs.GetFloat64("value")

	out, err := c.convert(t, v)
	if err != nil {
		return fmt.Errorf("convert %s: %w", kind, err)
	}
	res := strconv.FormatFloat(out, 'g', 6, 64)
	if c.unit != "" {
		res += " " + c.unit
	}
	r.printf("%s\n", res)
	return nil
}

func runHelp(r *REPL, fs *pflag.FlagSet) error {
	if fs.NArg() == 1 {
		cmd, ok := r.lookup(fs.Arg(0))
		if !ok {
			return usagef("unknown command %q", fs.Arg(0))
		}
		r.printUsage(cmd)
		if cmd.Name == "convert" {
			for _, k := range conversionKinds() {
				r.printf("  %-13s %s\n", k, conversions[k].summary)
			}
		}
		return nil
	}

	names := make([]string, 0, len(r.commands))
	for n := range r.commands {
		names = append(names, n)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, n := range names {
		c := r.commands[n]
		name := c.Name
		if len(c.Aliases) > 0 {
			name += " (" + joinNames(c.Aliases) + ")"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", name, c.Summary)
	}
	fmt.Fprintf(tw, "  exit\tLeave the program\n")
	return tw.Flush()
}
