package ninja

import "strings"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// translateCommand rewrites one raw shell command for embedding in a ninja
// command line: comments are stripped, line continuations spliced, bare
// newlines turned into spaces and '$' doubled for ninja. Quote regions
// ('', "", ``) are tracked so that none of this applies inside them.
func translateCommand(in string) string {
	buf := make([]byte, 0, len(in))

	prevBackslash := false
	// Space as the initial value so a comment at position 0 is recognized.
	prevChar := byte(' ')
	var quote byte

scan:
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch c {
		case '#':
			if quote == 0 && isSpace(prevChar) {
				break scan
			}
			buf = append(buf, c)

		case '\'', '"', '`':
			if quote != 0 {
				if quote == c {
					quote = 0
				}
			} else if !prevBackslash {
				quote = c
			}
			buf = append(buf, c)

		case '$':
			buf = append(buf, '$', '$')

		case '\n':
			if prevBackslash {
				// Delete the backslash and splice the lines.
				buf = buf[:len(buf)-1]
			} else {
				buf = append(buf, ' ')
			}

		default:
			buf = append(buf, c)
		}

		if c == '\\' {
			prevBackslash = !prevBackslash
		} else {
			prevBackslash = false
		}
		prevChar = c
	}

	for len(buf) > 0 {
		c := buf[len(buf)-1]
		if !isSpace(c) && c != ';' {
			break
		}
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}

// descriptionFromCommand recognizes a translated command that is a single
// plain echo and returns its unquoted text as a progress description.
// Any unquoted shell metacharacter with side effects (redirections, pipes,
// command separators) disqualifies the command; it stays an executed step.
func descriptionFromCommand(cmd string) (string, bool) {
	rest, ok := strings.CutPrefix(cmd, "echo ")
	if !ok {
		return "", false
	}

	var b strings.Builder
	prevBackslash := false
	var quote byte

	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case prevBackslash:
			prevBackslash = false
			b.WriteByte(c)
		case c == '\\':
			prevBackslash = true
			b.WriteByte(c)
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				b.WriteByte(c)
			}
		default:
			switch c {
			case '\'', '"', '`':
				quote = c
			case '<', '>', '&', '|', ';':
				return "", false
			default:
				b.WriteByte(c)
			}
		}
	}

	return b.String(), true
}
