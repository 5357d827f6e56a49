package ce

import (
	"strconv"
	"strings"

	"github.com/vegasq/godap/model"
)

// ParseHyperslab parses concatenated bracket groups into one slice per
// axis. DAP bounds are inclusive on both ends; the upper bound is
// converted to Go's exclusive convention here, so "[1:2]" becomes
// (1, 3, nil).
//
// The forms are "[]" (full axis), "[i]" (single index), "[start:stop]"
// and "[start:step:stop]"; any field may be omitted, leaving that bound
// open. More than three fields or a non-integer field is a parse error.
func ParseHyperslab(text string) ([]model.Slice, error) {
	if text == "" {
		return nil, nil
	}
	var out []model.Slice
	rest := text
	for rest != "" {
		if rest[0] != '[' {
			return nil, parseError(rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, parseError(rest)
		}
		sl, err := parseGroup(rest[1:end])
		if err != nil {
			return nil, err
		}
		out = append(out, sl)
		rest = rest[end+1:]
	}
	return out, nil
}

// parseGroup parses the inside of one bracket group.
func parseGroup(group string) (model.Slice, error) {
	fields := strings.Split(group, ":")
	if len(fields) > 3 {
		return model.Slice{}, parseError("[" + group + "]")
	}
	values := make([]*int, len(fields))
	for i, field := range fields {
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return model.Slice{}, parseError("[" + group + "]")
		}
		values[i] = model.Int(n)
	}

	var s model.Slice
	switch len(fields) {
	case 1:
		// Either "[]", a full axis, or a single index "[i]".
		if values[0] != nil {
			s.Start = values[0]
			s.Stop = model.Int(*values[0] + 1)
		}
	case 2:
		s.Start = values[0]
		if values[1] != nil {
			s.Stop = model.Int(*values[1] + 1)
		}
	case 3:
		// The middle field is the step: "[start:step:stop]".
		s.Start = values[0]
		s.Step = values[1]
		if values[2] != nil {
			s.Stop = model.Int(*values[2] + 1)
		}
	}
	return s, nil
}
