// Package ui implements the interactive terminal prompter: identity picker
// and single-key answer capture for quiz questions.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/codeamnesia/codeamnesia/internal/extract"
	"github.com/codeamnesia/codeamnesia/internal/identity"
	"github.com/codeamnesia/codeamnesia/internal/output"
	"github.com/codeamnesia/codeamnesia/internal/quiz"
)

// ErrAborted is returned when the user quits mid-quiz.
var ErrAborted = errors.New("quiz aborted")

// maxPickerEntries bounds the identity picker list.
const maxPickerEntries = 9

// Prompter reads answers from in and writes prompts to out. It satisfies
// app.Prompter.
type Prompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewPrompter builds a prompter on stdin/stdout.
func NewPrompter() *Prompter {
	return &Prompter{in: os.Stdin, out: os.Stdout}
}

// PickIdentity shows the ranked identity list and reads a selection.
func (p *Prompter) PickIdentity(ranked []identity.Ranked) (identity.Identity, error) {
	if len(ranked) == 0 {
		return identity.Identity{}, errors.New("no identities to choose from")
	}
	if len(ranked) > maxPickerEntries {
		ranked = ranked[:maxPickerEntries]
	}

	fmt.Fprintln(p.out, "Whose history is this quiz about?")
	output.Identities(p.out, ranked)
	fmt.Fprintf(p.out, "Pick 1-%d: ", len(ranked))

	for {
		key, err := p.readKey()
		if err != nil {
			return identity.Identity{}, err
		}
		n, err := strconv.Atoi(string(key))
		if err == nil && n >= 1 && n <= len(ranked) {
			fmt.Fprintf(p.out, "%d\n", n)
			return ranked[n-1].Identity, nil
		}
		if key == 'q' {
			fmt.Fprintln(p.out)
			return identity.Identity{}, ErrAborted
		}
	}
}

// AskCode renders a code snippet and captures the confidence answer.
func (p *Prompter) AskCode(index, total int, frag extract.CodeFragment) (quiz.Confidence, error) {
	output.CodePanel(p.out, index, total, frag)
	return p.askConfidence()
}

// AskComment renders a comment block and captures the confidence answer.
func (p *Prompter) AskComment(index, total int, frag extract.CommentFragment) (quiz.Confidence, error) {
	output.CommentPanel(p.out, index, total, frag)
	return p.askConfidence()
}

var answerKeys = map[byte]quiz.Confidence{
	'1': quiz.Remember,
	'2': quiz.Familiar,
	'3': quiz.Uncertain,
	'4': quiz.Foreign,
}

func (p *Prompter) askConfidence() (quiz.Confidence, error) {
	fmt.Fprintln(p.out, "Did you write this?")
	fmt.Fprintln(p.out, "  1) I clearly remember writing it")
	fmt.Fprintln(p.out, "  2) Feels like mine, no specific memory")
	fmt.Fprintln(p.out, "  3) Can't tell")
	fmt.Fprintln(p.out, "  4) Definitely not mine")
	fmt.Fprint(p.out, "> ")

	for {
		key, err := p.readKey()
		if err != nil {
			return 0, err
		}
		if key == 'q' || key == 3 { // q or Ctrl-C
			fmt.Fprintln(p.out)
			return 0, ErrAborted
		}
		if confidence, ok := answerKeys[key]; ok {
			answered := color.New(color.Bold)
			answered.Fprintf(p.out, "%c (%s)\n", key, confidence)
			return confidence, nil
		}
	}
}

// readKey reads a single keypress in raw mode when stdin is a terminal, and
// falls back to line-buffered input otherwise (pipes, tests, CI).
func (p *Prompter) readKey() (byte, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		if p.reader == nil {
			p.reader = bufio.NewReader(p.in)
		}
		line, err := p.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return '\n', nil
		}
		return line[0], nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	if _, err := p.in.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
