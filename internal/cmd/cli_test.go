package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
)

// PatchCLI returns a context which contains a CLI value with the output
// streams set to buffers and, when non-nil, a substitute engine and
// prompter. PatchCLI is used by tests to run commands without a server or a
// terminal, and to record the output they produce.
func PatchCLI(ctx context.Context, engine Engine, prompter Prompter) (context.Context, BufferedStreams) {
	bufs := BufferedStreams{
		Stdin:  new(bytes.Buffer),
		Stdout: new(bytes.Buffer),
		Stderr: new(bytes.Buffer),
	}
	cli := &CLI{
		Stdin:    bufs.Stdin,
		Stdout:   io.MultiWriter(bufs.Stdout, os.Stdout),
		Stderr:   io.MultiWriter(bufs.Stderr, os.Stderr),
		engine:   engine,
		prompter: prompter,
	}
	return context.WithValue(ctx, ctxKey, cli), bufs
}

type BufferedStreams struct {
	Stdin  *bytes.Buffer
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
}
