package model

import (
	"strings"
)

// quoteSafe lists the characters besides letters and digits that may
// appear unescaped in a variable name, per the DAP specification. The
// percent sign is part of the set, which makes quoting idempotent.
const quoteSafe = `%_!~*'-"`

// Quote percent-escapes every character of name that is not a letter, a
// digit or part of the DAP safe set. Unlike URL escaping this includes
// the period, which would otherwise collide with the id separator.
func Quote(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isSafe(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

// Unquote reverses Quote. Tree keys and constraint-expression segments
// stay quoted; unquoting is only needed when a name is shown to a human.
func Unquote(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] == '%' && i+2 < len(name) {
			hi, ok1 := unhex(name[i+1])
			lo, ok2 := unhex(name[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isSafe(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	return strings.IndexByte(quoteSafe, c) >= 0
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
