// Package console is the line-based prompt shown before a session when running
// interactively. It only reads the session snapshot.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/internal/scheduler"
	"github.com/akuhn/pt/internal/storage/cache"
)

const defaultWeightsShown = 10

const help = `commands:
  buckets          number of keys per bucket
  weights [n]      the n lowest weights (default 10)
  history <ref>    attempts for both directions of an item
  go               start the session (also an empty line)
  quit             exit without a session`

type Console struct {
	in    *bufio.Reader
	out   io.Writer
	cache *cache.Cache
}

func New(in *bufio.Reader, out io.Writer, cache *cache.Cache) *Console {
	return &Console{in: in, out: out, cache: cache}
}

// Run reads commands until the user starts or quits. It reports whether a session
// should follow. End of input counts as quit.
func (c *Console) Run(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprint(c.out, "pt> ")

		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		eof := err != nil

		fields := strings.Fields(line)
		if len(fields) == 0 {
			if eof {
				return false, nil
			}
			return true, nil
		}

		switch fields[0] {
		case "go":
			return true, nil
		case "quit", "exit":
			return false, nil
		case "buckets":
			c.buckets()
		case "weights":
			c.weights(fields[1:])
		case "history":
			c.history(fields[1:])
		default:
			fmt.Fprintln(c.out, help)
		}

		if eof {
			return false, nil
		}
	}
}

func (c *Console) buckets() {
	counts := make(map[scheduler.Bucket]int, len(scheduler.Buckets))
	for _, e := range c.cache.Table().Entries() {
		counts[e.Bucket]++
	}
	for _, b := range scheduler.Buckets {
		fmt.Fprintf(c.out, "%-15s %d\n", b, counts[b])
	}
}

func (c *Console) weights(args []string) {
	n := defaultWeightsShown
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			fmt.Fprintf(c.out, "not a count: %q\n", args[0])
			return
		}
		n = v
	}

	entries := c.cache.Table().Entries()
	if len(entries) > n {
		entries = entries[:n]
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "%.3f  %-15s %s\n", e.Weight, e.Bucket, e.Key)
	}
}

func (c *Console) history(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: history <ref>")
		return
	}

	found := false
	for _, d := range models.Directions {
		g, ok := c.cache.GetGroup(models.Key{Reference: args[0], Direction: d})
		if !ok {
			continue
		}
		found = true
		fmt.Fprintf(c.out, "%s (%s)\n", g.Key, d)
		for _, a := range g.Attempts {
			mark := "ok"
			if !a.Succeeded {
				mark = "wrong"
			}
			line := fmt.Sprintf("  %s %s", a.Timestamp.UTC().Format(time.DateTime), mark)
			if a.TypedAnswer != nil {
				line += ": " + *a.TypedAnswer
			}
			fmt.Fprintln(c.out, line)
		}
	}
	if !found {
		fmt.Fprintf(c.out, "no history for %s\n", args[0])
	}
}
