package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"menukit/internal/config"
	"menukit/internal/logger"
	"menukit/internal/menu"
	"menukit/pkg/menutypes"
)

// Runner drives the interactive loop: display the menu, read a token,
// dispatch it, report the outcome, repeat until quit.
type Runner struct {
	registry *menu.Registry
	settings config.Settings
	reader   LineReader
	out      io.Writer
	term     *termenv.Output
}

// NewRunner wires a runner over a populated registry. out receives the
// menu listing and outcome reports; the reader supplies every line of
// user input.
func NewRunner(registry *menu.Registry, settings config.Settings, reader LineReader, out io.Writer) *Runner {
	return &Runner{
		registry: registry,
		settings: settings,
		reader:   reader,
		out:      out,
		term:     termenv.NewOutput(out),
	}
}

// Run executes the menu loop. With loop=false a single dispatch attempt is
// made (empty input merely re-prompts). Quit tokens, end of input, and
// Ctrl-C terminate cleanly. Resolution and argument errors are reported
// and the loop continues; with loop=false they are returned to the caller,
// handler faults included.
func (r *Runner) Run(loop bool) error {
	dispatcher := menu.NewDispatcher(r.registry, r.settings.AskArgs, r.promptParam)

	for {
		if r.settings.ClearScreen {
			r.term.ClearScreen()
		}
		fmt.Fprint(r.out, RenderMenu(r.settings.Title, r.registry.Options()))

		line, err := r.reader.ReadLine(r.settings.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				fmt.Fprintln(r.out, "Exiting...")
				return nil
			}
			return fmt.Errorf("reading selection: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := dispatcher.Dispatch(line)
		if err != nil {
			logger.Error("dispatch failed", "input", strings.TrimSpace(line), "error", err)
			fmt.Fprint(r.out, renderError(err))
			if !loop {
				return err
			}
			continue
		}

		switch result.Kind {
		case menu.DispatchQuit:
			fmt.Fprintln(r.out, "Exiting...")
			return nil
		case menu.DispatchNotFound:
			fmt.Fprint(r.out, renderNotFound(result.Token, result.Suggestions))
		case menu.DispatchAmbiguous:
			fmt.Fprint(r.out, renderAmbiguous(result.Candidates))
		case menu.DispatchInvoked:
			logger.Debug("option invoked", "option", result.Option.Name)
			fmt.Fprintln(r.out)
		}

		if !loop {
			return nil
		}
	}
}

// promptParam is the argument collector's prompt collaborator: one
// blocking read per parameter.
func (r *Runner) promptParam(p menutypes.Param) (string, error) {
	return r.reader.ReadLine(menu.PromptLabel(p))
}
