// Package catalog reads vocabulary files into an ordered set of items.
//
// A line starting with a number opens a group. Each following line of the form
// "formA = formB" becomes one item referenced as "<number>.<letter>", with letters
// counting a, b, ... z, aa, ab within the group. Fields after a second "=" are
// ignored and every other line is skipped.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/akuhn/pt/internal/models"
)

var ErrEmptyCatalog = errors.New("catalog has no items")

var groupHeader = regexp.MustCompile(`^\d+`)

type Catalog struct {
	items []models.Item
	index map[string]int
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
	}
	return c, nil
}

func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}

	var (
		group  string
		letter string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if num := groupHeader.FindString(line); num != "" {
			n, err := strconv.Atoi(num)
			if err != nil {
				continue
			}
			group, letter = strconv.Itoa(n), "a"
			continue
		}

		if group == "" {
			continue
		}

		formA, formB, ok := splitPair(line)
		if !ok {
			continue
		}

		c.put(models.Item{
			Reference: group + "." + letter,
			FormA:     formA,
			FormB:     formB,
		})
		letter = nextLetter(letter)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	return c, nil
}

// Items returns the items in file order.
func (c *Catalog) Items() []models.Item {
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Lookup(ref string) (models.Item, bool) {
	i, ok := c.index[ref]
	if !ok {
		return models.Item{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// put keeps the first position of a reference and the last content.
func (c *Catalog) put(item models.Item) {
	if i, ok := c.index[item.Reference]; ok {
		c.items[i] = item
		return
	}
	c.index[item.Reference] = len(c.items)
	c.items = append(c.items, item)
}

func splitPair(line string) (string, string, bool) {
	fields := strings.Split(line, "=")
	if len(fields) < 2 {
		return "", "", false
	}
	formA, formB := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
	if formA == "" || formB == "" {
		return "", "", false
	}
	return formA, formB, true
}

// nextLetter counts like spreadsheet columns: z is followed by aa.
func nextLetter(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 'z' {
			b[i]++
			return string(b)
		}
		b[i] = 'a'
	}
	return "a" + string(b)
}
