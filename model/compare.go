package model

import (
	"fmt"
	"regexp"
)

// Comparison operators accepted by Compare. They mirror the relational
// operators of the constraint-expression grammar.
const (
	OpEqual        = "="
	OpNotEqual     = "!="
	OpLess         = "<"
	OpLessEqual    = "<="
	OpGreater      = ">"
	OpGreaterEqual = ">="
	OpMatch        = "=~"
)

// Compare evaluates "element op other" for every first-axis element and
// returns the resulting boolean mask, used for row selection.
func (b *BaseType) Compare(op string, other interface{}) ([]bool, error) {
	values := b.Values()
	mask := make([]bool, len(values))
	for i, v := range values {
		ok, err := compare(v, op, other)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.id, err)
		}
		mask[i] = ok
	}
	return mask, nil
}

// compare compares two values using the given operator.
func compare(left interface{}, op string, right interface{}) (bool, error) {
	if op == OpMatch {
		pattern, ok := right.(string)
		if !ok {
			return false, fmt.Errorf("regex pattern must be a string, got %T", right)
		}
		str, ok := toString(left)
		if !ok {
			return false, fmt.Errorf("cannot match %T against a regex", left)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("invalid regex %q: %w", pattern, err)
		}
		return re.MatchString(str), nil
	}

	// Handle nil values
	if left == nil || right == nil {
		switch op {
		case OpEqual:
			return left == right, nil
		case OpNotEqual:
			return left != right, nil
		}
		return false, nil
	}

	// Try numeric comparison
	leftNum, leftIsNum := toFloat64(left)
	rightNum, rightIsNum := toFloat64(right)
	if leftIsNum && rightIsNum {
		return compareNumbers(leftNum, op, rightNum)
	}

	// Try string comparison
	leftStr, leftIsStr := toString(left)
	rightStr, rightIsStr := toString(right)
	if leftIsStr && rightIsStr {
		return compareStrings(leftStr, op, rightStr)
	}

	// Try boolean comparison
	leftBool, leftIsBool := toBool(left)
	rightBool, rightIsBool := toBool(right)
	if leftIsBool && rightIsBool {
		return compareBools(leftBool, op, rightBool)
	}

	return false, fmt.Errorf("cannot compare %T with %T", left, right)
}

func compareNumbers(left float64, op string, right float64) (bool, error) {
	switch op {
	case OpEqual:
		return left == right, nil
	case OpNotEqual:
		return left != right, nil
	case OpLess:
		return left < right, nil
	case OpLessEqual:
		return left <= right, nil
	case OpGreater:
		return left > right, nil
	case OpGreaterEqual:
		return left >= right, nil
	}
	return false, fmt.Errorf("unknown operator %q", op)
}

func compareStrings(left, op, right string) (bool, error) {
	switch op {
	case OpEqual:
		return left == right, nil
	case OpNotEqual:
		return left != right, nil
	case OpLess:
		return left < right, nil
	case OpLessEqual:
		return left <= right, nil
	case OpGreater:
		return left > right, nil
	case OpGreaterEqual:
		return left >= right, nil
	}
	return false, fmt.Errorf("unknown operator %q", op)
}

func compareBools(left bool, op string, right bool) (bool, error) {
	switch op {
	case OpEqual:
		return left == right, nil
	case OpNotEqual:
		return left != right, nil
	}
	return false, fmt.Errorf("operator %q not supported for booleans", op)
}

// toFloat64 converts a value to float64 if possible.
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toString converts a value to string if possible.
func toString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return "", false
	}
}

// toBool converts a value to bool if possible.
func toBool(v interface{}) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	return false, false
}
