// Package repl implements the interactive command loop driving a session.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/shlex"
	"github.com/spf13/pflag"

	"github.com/ukaji3/supersat-go/pkg/supersat"
)

// DefaultPrompt is printed before each command read from the input.
const DefaultPrompt = "supersat> "

// REPL reads commands line by line and applies them to a session.
type REPL struct {
	session  *supersat.Session
	out      io.Writer
	log      *slog.Logger
	prompt   string
	commands map[string]*Command
	aliases  map[string]string
}

// New returns a REPL writing command output to out and events to logger.
func New(session *supersat.Session, out io.Writer, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &REPL{
		session:  session,
		out:      out,
		log:      logger,
		prompt:   DefaultPrompt,
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
	for _, c := range builtinCommands() {
		r.register(c)
	}
	return r
}

// SetPrompt replaces the prompt. An empty prompt disables it.
func (r *REPL) SetPrompt(p string) { r.prompt = p }

func (r *REPL) register(c *Command) {
	r.commands[c.Name] = c
	for _, a := range c.Aliases {
		r.aliases[a] = c.Name
	}
}

func (r *REPL) lookup(name string) (*Command, bool) {
	if alias, ok := r.aliases[name]; ok {
		name = alias
	}
	c, ok := r.commands[name]
	return c, ok
}

// Run reads commands from in until EOF, an exit command or cancellation of
// ctx. Cancellation is only observed between commands.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	var err error
loop:
	for {
		if r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		select {
		case <-ctx.Done():
			break loop
		case line, ok := <-lines:
			if !ok {
				select {
				case err = <-scanErr:
				default:
				}
				break loop
			}
			if r.Execute(line) {
				break loop
			}
		}
	}

	r.log.Info("Exiting program.")
	if err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Execute runs one command line and reports whether the loop should stop.
// Errors are logged, never returned: a failing command leaves the loop
// running.
func (r *REPL) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	if fields[0] == "exit" || fields[0] == "quit" {
		return true
	}

	cmd, ok := r.lookup(fields[0])
	if !ok {
		r.log.Info("User echo : " + line)
		return false
	}

	split := shlex.Split
	if cmd.Verbatim {
		split = splitVerbatim
	}
	tokens, err := split(line)
	if err != nil {
		r.log.Error("failed to parse command", "line", line, "error", err)
		return false
	}

	r.log.Debug("running command", "command", cmd.Name, "line", line)
	if err := r.run(cmd, tokens[1:]); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(r.out, "error: %v\n", ue.err)
			r.printUsage(cmd)
		}
		r.log.Error(err.Error(), "command", cmd.Name)
	}
	return false
}

// usageError marks errors caused by a malformed invocation, which print
// the command's usage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (r *REPL) run(cmd *Command, args []string) error {
	fs := cmd.flagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			r.printUsage(cmd)
			return nil
		}
		return &usageError{err: err}
	}
	if n := fs.NArg(); n < cmd.MinArgs || (cmd.MaxArgs >= 0 && n > cmd.MaxArgs) {
		return usagef("%s: expected %s, got %d argument(s)", cmd.Name, cmd.arity(), n)
	}
	return cmd.Run(r, fs)
}

func (r *REPL) printUsage(cmd *Command) {
	fmt.Fprintf(r.out, "Usage: %s\n", cmd.Usage)
	if flags := cmd.flagSet().FlagUsages(); flags != "" {
		fmt.Fprintf(r.out, "Flags:\n%s", flags)
	}
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// splitVerbatim splits line on whitespace. Single or double quotes group
// words, but backslashes are kept as written so regular expression escapes
// reach the selector unchanged.
func splitVerbatim(line string) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		quote  rune
		inWord bool
	)
	for _, c := range line {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteRune(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inWord = true
		case unicode.IsSpace(c):
			if inWord {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(c)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
