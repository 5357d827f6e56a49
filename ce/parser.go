package ce

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vegasq/godap/model"
)

// ErrParse reports a malformed constraint expression or hyperslab.
var ErrParse = errors.New("parse error")

// Item is one entry of a projection: either an opaque function call kept
// verbatim in Call, or a dotted variable path in Path.
type Item struct {
	Call string
	Path []Segment
}

// Segment is one step of a projected path: a quoted name plus the slices
// of its hyperslab, if any.
type Segment struct {
	Name   string
	Slices []model.Slice
}

// Projection lists the requested variables and function calls in order.
type Projection []Item

// selectionRe matches the relational operators that mark a token as a
// selection clause.
var selectionRe = regexp.MustCompile(`<=|>=|!=|=~|>|<|=`)

// segmentRe splits a path segment into a name and trailing bracket
// groups.
var segmentRe = regexp.MustCompile(`^(.*?)(\[.*\])?$`)

// ParseCE splits a decoded constraint expression into its projection and
// selection. The projection is the optional leading clause; every other
// clause is a selection and is returned verbatim. A leading clause that
// contains a relational operator makes the whole expression a selection.
func ParseCE(query string) (Projection, []string, error) {
	var tokens []string
	for _, token := range strings.Split(query, "&") {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil, nil, nil
	}
	if selectionRe.MatchString(tokens[0]) {
		return nil, tokens, nil
	}
	projection, err := parseProjection(tokens[0])
	if err != nil {
		return nil, nil, err
	}
	return projection, tokens[1:], nil
}

// parseProjection splits the projection clause on top-level commas and
// parses each item.
func parseProjection(input string) (Projection, error) {
	tokens, err := splitTokens(input)
	if err != nil {
		return nil, err
	}
	out := make(Projection, 0, len(tokens))
	for _, token := range tokens {
		item, err := parseItem(token)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// splitTokens splits on commas at parenthesis depth zero, so the
// arguments of server-side function calls stay together.
func splitTokens(input string) ([]string, error) {
	var out []string
	depth, start := 0, 0
	for pos := 0; pos < len(input); pos++ {
		switch input[pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, parseError(input[pos:])
			}
		case ',':
			if depth == 0 {
				out = append(out, input[start:pos])
				start = pos + 1
			}
		}
	}
	if depth != 0 {
		return nil, parseError(input)
	}
	return append(out, input[start:]), nil
}

// parseItem parses one projection item. Anything containing a parenthesis
// is a function call and is kept whole; everything else is a dotted path
// with optional per-segment hyperslabs.
func parseItem(token string) (Item, error) {
	if strings.Contains(token, "(") {
		return Item{Call: token}, nil
	}
	parts := strings.Split(token, ".")
	path := make([]Segment, 0, len(parts))
	for _, part := range parts {
		m := segmentRe.FindStringSubmatch(part)
		slices, err := ParseHyperslab(m[2])
		if err != nil {
			return Item{}, err
		}
		path = append(path, Segment{Name: model.Quote(m[1]), Slices: slices})
	}
	return Item{Path: path}, nil
}

// parseError wraps ErrParse with the offending prefix of the input.
func parseError(input string) error {
	prefix := input
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Errorf("%w: unable to parse token: %s", ErrParse, prefix)
}
