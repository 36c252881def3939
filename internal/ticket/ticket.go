// Package ticket parses issue-tracker ticket references out of branch names
// and commit messages and composes normalized commit messages from them.
package ticket

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// space is Unicode White_Space. RE2's \s only covers ASCII and misses \v.
const space = `\t\n\v\f\r\x{85}\p{Z}`

// pattern matches a ticket prefix such as "ABC-123". Anything glued to the
// ticket (group 2) is dropped; the whitespace-separated tail is group 3.
var pattern = regexp.MustCompile(`^([A-Z]+-\d+)([^` + space + `]*)?(?:[` + space + `]+(.*))?$`)

// Parse splits s into a ticket and the remaining text.
//
// A nil result means the part is absent. An empty input yields (nil, nil).
// Input that does not start with a ticket is returned whole as the remainder.
//
//	"ABC-123 Tail"     -> "ABC-123", "Tail"
//	"ABC-123-NOPE Tail" -> "ABC-123", "Tail"
//	"ABC-123x"         -> "ABC-123", nil
//	"Head Tail"        -> nil, "Head Tail"
func Parse(s string) (ticket, remainder *string) {
	if s == "" {
		return nil, nil
	}

	m := pattern.FindStringSubmatchIndex(s)
	if m == nil {
		return nil, &s
	}

	t := s[m[2]:m[3]]
	ticket = &t
	// Group 3 is optional; -1 means it did not participate.
	if m[6] >= 0 {
		rest := s[m[6]:m[7]]
		remainder = &rest
	}
	return ticket, remainder
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
