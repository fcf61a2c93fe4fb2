package domain

import "strings"

// splitArgs splits an attribute argument list at top-level commas. Commas
// inside string literals or nested brackets do not split. One space after
// each comma outside string literals is dropped, other whitespace is kept.
// A trailing comma closes the list and does not produce an empty argument.
// ok is false when the brackets or quotes are unbalanced; the returned
// arguments are then best effort.
func splitArgs(payload string) (args []string, ok bool) {
	if payload == "" {
		return nil, true
	}

	var (
		current   strings.Builder
		stack     []byte
		inString  bool
		escaped   bool
		skipSpace bool
		balanced  = true
	)

	for i := 0; i < len(payload); i++ {
		c := payload[i]

		if skipSpace {
			skipSpace = false
			if c == ' ' {
				continue
			}
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}

			current.WriteByte(c)

			continue
		}

		switch c {
		case '"':
			inString = true
		case '(', '[', '{':
			stack = append(stack, closerOf(c))
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				balanced = false
				break
			}

			stack = stack[:len(stack)-1]
		case ',':
			skipSpace = true

			if len(stack) == 0 {
				args = append(args, current.String())
				current.Reset()

				continue
			}
		}

		current.WriteByte(c)
	}

	last := current.String()
	if len(args) == 0 || strings.TrimSpace(last) != "" {
		args = append(args, last)
	}

	return args, balanced && !inString && len(stack) == 0
}

func closerOf(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}
