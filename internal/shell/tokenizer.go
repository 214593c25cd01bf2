package shell

import (
	"regexp"
	"strings"
)

// tokenPattern matches one token at the start of the remaining input, after
// any leading whitespace. Alternatives, in priority order: the append
// operator, a bare run, a double-quoted span, a single-quoted span. The
// append operator needs its own alternative because a bare run would glue
// it to a word that follows without a space (">>f" would be one token).
var tokenPattern = regexp.MustCompile(`\A\s*(?:(>>)|([^\s"']+)|"((?:\\.|[^"])+)"|'((?:\\.|[^'])+)')`)

// Tokenize splits a command line into tokens, respecting shell quoting
// rules. Pipe and redirection operators other than >> are not treated
// specially here; they surface as ordinary bare tokens and the parser
// recognizes them by value. Input that matches no token form ends the scan,
// so an unterminated quote silently truncates the stream. All-whitespace
// input yields no tokens.
func Tokenize(line string) []string {
	var tokens []string
	pos := 0
	for pos < len(line) {
		m := tokenPattern.FindStringSubmatchIndex(line[pos:])
		if m == nil {
			break
		}
		switch {
		case m[2] >= 0:
			tokens = append(tokens, ">>")
		case m[4] >= 0:
			tokens = append(tokens, line[pos+m[4]:pos+m[5]])
		case m[6] >= 0:
			tokens = append(tokens, strings.ReplaceAll(line[pos+m[6]:pos+m[7]], `\"`, `"`))
		case m[8] >= 0:
			tokens = append(tokens, strings.ReplaceAll(line[pos+m[8]:pos+m[9]], `\'`, `'`))
		}
		pos += m[1]
	}
	return tokens
}
