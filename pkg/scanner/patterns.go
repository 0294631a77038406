// File: pkg/scanner/patterns.go
package scanner

import (
	"regexp"
	"strings"
)

// Glob reports whether name matches an fnmatch-style pattern.
// '*' matches any run of characters (including '/'), '?' matches a single
// character and '[...]' / '[!...]' are character classes. When caseSensitive
// is false both sides are lower-cased before comparison.
func Glob(name, pattern string, caseSensitive bool) bool {
	if !caseSensitive {
		name = strings.ToLower(name)
		pattern = strings.ToLower(pattern)
	}
	re, err := regexp.Compile(globToRegex(pattern))
	if err != nil {
		return name == pattern
	}
	return re.MatchString(name)
}

// globToRegex translates a glob pattern into an anchored regular expression.
func globToRegex(pattern string) string {
	var b strings.Builder
	b.WriteString(`(?s)^`)

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; ch {
		case '*':
			for i+1 < len(runes) && runes[i+1] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			end := classEnd(runes, i)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(bracketToRegex(runes[i+1 : end]))
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}

	b.WriteString(`$`)
	return b.String()
}

// classEnd returns the index of the ']' closing the class opened at start,
// or -1 when the class is unterminated. A ']' directly after '[' or '[!' is a
// literal member of the class.
func classEnd(runes []rune, start int) int {
	j := start + 1
	if j < len(runes) && runes[j] == '!' {
		j++
	}
	if j < len(runes) && runes[j] == ']' {
		j++
	}
	for j < len(runes) && runes[j] != ']' {
		j++
	}
	if j >= len(runes) {
		return -1
	}
	return j
}

// bracketToRegex converts the body of a glob character class to regex syntax.
func bracketToRegex(body []rune) string {
	var b strings.Builder
	b.WriteByte('[')
	if len(body) > 0 && body[0] == '!' {
		b.WriteByte('^')
		body = body[1:]
	}
	for _, r := range body {
		switch r {
		case '\\', '[', ']', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

// dirForm strips a trailing "/*" or "/" so that "build/" and "dist/*" can be
// matched against the directory itself.
func dirForm(pattern string) string {
	if trimmed, ok := strings.CutSuffix(pattern, "/*"); ok {
		return trimmed
	}
	return strings.TrimSuffix(pattern, "/")
}
