// Package shell owns the interactive session: the prompt, the read/parse/
// execute loop, and the cursor state machine. The cursor is a value held
// by the Shell and threaded into every command; only a cursor-effect
// outcome replaces it.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirsh/pkg/commands"
	"github.com/arthur-debert/dirsh/pkg/logging"
	"github.com/arthur-debert/dirsh/pkg/types"
	"github.com/arthur-debert/dirsh/pkg/ui/styles"
)

const banner = `Welcome to simple command line!
Main Usage: <command> [arg0 [arg1 [args...]]]

Show available commands: listCommands
Show usage of command  : help <command>
Close command line     : exit
`

// Options configures a Shell.
type Options struct {
	In           io.Reader
	Out          io.Writer
	Registry     *commands.Registry
	StartDir     string
	PromptSuffix string
	Styles       styles.Styles
}

// Shell runs the interactive session loop.
type Shell struct {
	in           *bufio.Reader
	out          io.Writer
	registry     *commands.Registry
	cursor       string
	promptSuffix string
	styles       styles.Styles
	log          zerolog.Logger
}

// New creates a Shell with its cursor at StartDir.
func New(opts Options) *Shell {
	return &Shell{
		in:           bufio.NewReader(opts.In),
		out:          opts.Out,
		registry:     opts.Registry,
		cursor:       opts.StartDir,
		promptSuffix: opts.PromptSuffix,
		styles:       opts.Styles,
		log:          logging.GetLogger("shell"),
	}
}

// Cursor returns the session's current directory.
func (s *Shell) Cursor() string {
	return s.cursor
}

// Run executes the session loop until the exit command or end of input.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, s.styles.Banner.Render(banner))
	s.log.Info().Str("cursor", s.cursor).Msg("Session started")

	for {
		fmt.Fprint(s.out, s.styles.Prompt.Render(s.cursor+s.promptSuffix))

		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// A last unterminated line still gets executed.
				if strings.TrimSpace(line) != "" {
					if done := s.dispatch(line); done {
						return nil
					}
				}
				fmt.Fprintln(s.out)
				s.log.Info().Msg("Session ended on end of input")
				return nil
			}
			return err
		}

		if done := s.dispatch(line); done {
			return nil
		}
	}
}

// dispatch parses and executes one line, applies the outcome, and reports
// whether the session should terminate.
func (s *Shell) dispatch(line string) bool {
	cmd := s.registry.Parse(line)
	logging.LogCommand(cmd.Name(), cmd.Args())

	out := cmd.Execute(s.cursor)
	switch out.Effect {
	case types.EffectSetCursor:
		// Cursor changes print nothing.
		s.cursor = out.Cursor
		return false
	case types.EffectExit:
		fmt.Fprintln(s.out, out.Text)
		s.log.Info().Msg("Session ended on exit command")
		return true
	default:
		// Empty outcomes still print a blank line.
		fmt.Fprintln(s.out, out.Text)
		return false
	}
}
