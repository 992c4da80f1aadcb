// Package shell provides the interactive host around the menukit core: a
// readline-backed line reader, the menu renderer, and the display/read/
// dispatch run loop.
package shell

import (
	"github.com/chzyer/readline"
)

// LineReader supplies one line of user input per call. It is the raw-line
// collaborator the core blocks on for both the main selection prompt and
// per-parameter argument prompts. ReadLine returns io.EOF when input is
// exhausted and readline.ErrInterrupt on Ctrl-C.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// readlineReader is the production LineReader on top of chzyer/readline.
type readlineReader struct {
	rl *readline.Instance
}

// NewLineReader opens a readline instance on the controlling terminal.
func NewLineReader() (LineReader, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}
