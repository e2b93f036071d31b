package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// CLI exposes common dependencies to commands.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	RootOptions rootOptions

	// engine and prompter are substituted by tests so commands run without
	// a server or a terminal.
	engine   Engine
	prompter Prompter
}

type rootOptions struct {
	LogLevel string
}

// Output a string to CLI.Stdout. Output is like fmt.Printf except that it always
// adds a trailing newline.
// To write output without a trailing newline use CLI.Stdout directly.
func (c *CLI) Output(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout, format+"\n", args...)
}

// Prompter returns the prompter used to collect values interactively.
func (c *CLI) Prompter() Prompter {
	if c.prompter != nil {
		return c.prompter
	}
	return &surveyPrompter{io: c.surveyIO()}
}

// surveyIO points survey at the CLI streams when they are real files, so
// tests and callers that replaced the streams do not break prompting.
func (c *CLI) surveyIO() []survey.AskOpt {
	in, inOK := c.Stdin.(terminal.FileReader)
	out, outOK := c.Stdout.(terminal.FileWriter)
	if inOK && outOK {
		return []survey.AskOpt{survey.WithStdio(in, out, c.Stderr)}
	}
	return nil
}

// key is a type to ensure no other package can access the CLI value in context.
type key struct{}

// ctxKey used to store CLI in the context.
var ctxKey = key{}

// newCLI looks for a CLI stored in context. If one exists, the CLI from
// context is returned, otherwise a new CLI is created with streams set to the
// standard input and output streams.
//
// newCLI is a shim for testing, allowing tests to use a buffer instead of the
// standard streams.
func newCLI(ctx context.Context) *CLI {
	cli, ok := ctx.Value(ctxKey).(*CLI)
	if ok {
		return cli
	}

	return &CLI{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
