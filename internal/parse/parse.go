// Package parse reads the two text inputs: the route list that becomes the
// graph and the estimate list that becomes the heuristic table.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/graph"
	"github.com/atharv3903/pathion/internal/heur"
)

// ErrMalformedLine reports an input line that does not match the expected
// shape. The wrapped message carries the line number.
var ErrMalformedLine = errors.New("parse: malformed line")

// Routes parses route lines of the form "(from, to, distance)". The
// parentheses are optional, fields are comma-separated and trimmed. Blank
// lines are skipped so trailing newlines in hand-edited files don't become
// phantom edges.
func Routes(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		line = strings.Trim(line, "()")

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w %d: want 3 comma-separated fields, got %d", ErrMalformedLine, lineNo, len(parts))
		}
		from := strings.TrimSpace(parts[0])
		to := strings.TrimSpace(parts[1])
		if from == "" || to == "" {
			return nil, fmt.Errorf("%w %d: empty node label", ErrMalformedLine, lineNo)
		}

		w, err := parseWeight(parts[2])
		if err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", lineNo, err)
		}
		g.AddEdge(from, to, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: reading routes: %w", err)
	}
	return g, nil
}

// Estimates parses heuristic lines of the form "from to distance", three
// whitespace-separated fields. The pair is ordered: (from, to) and
// (to, from) are independent entries.
func Estimates(r io.Reader) (*heur.Table, error) {
	t := heur.NewTable()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w %d: want 3 whitespace-separated fields, got %d", ErrMalformedLine, lineNo, len(parts))
		}

		w, err := parseWeight(parts[2])
		if err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", lineNo, err)
		}
		if err := t.Set(parts[0], parts[1], w); err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: reading estimates: %w", err)
	}
	return t, nil
}

// parseWeight keeps the underlying error kind: a non-numeric field is
// ErrMalformedLine, a negative or non-finite one is fixed.ErrInvalidWeight.
func parseWeight(field string) (fixed.Weight, error) {
	field = strings.TrimSpace(field)
	d, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad distance %q", ErrMalformedLine, field)
	}
	return fixed.Encode(d)
}
