package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Terminal is the console dialog. The reader may be shared with other line-based
// consumers as long as they do not read concurrently.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in *bufio.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// Answer reads one line. A final line without newline is still returned; after that
// io.EOF ends the dialog.
func (t *Terminal) Answer(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(t.out, "> "); err != nil {
		return "", err
	}

	line, err := t.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
