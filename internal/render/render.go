// Package render decorates a compile error with the offending source line
// and a caret underline, the way the teacher's CLI prints a *BadExpr but
// extended to the reproduction-critical format this front-end requires:
//
//	Error @ [<file>:<row>:<col>]: <message>
//	|
//	|     <full source line from the file>
//	|_    <spaces><caret+tildes aligned under the offending token>
package render

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	rouleaux "go.rouleaux.dev/pkg"
)

// SourceLine returns the text of line number line (1-based) of filename, or
// an empty string if the file can't be read or the line doesn't exist.
func SourceLine(filename string, line uint64) string {
	f, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var current uint64
	for scanner.Scan() {
		current++
		if current == line {
			return scanner.Text()
		}
	}

	return ""
}

// identificationLine draws a '^' under the first byte of t.Text, followed
// by len(t.Text)-1 '~' characters, preceded by col-1 spaces.
func identificationLine(t rouleaux.Token) string {
	var b strings.Builder

	if t.Loc.Col > 1 {
		b.WriteString(strings.Repeat(" ", int(t.Loc.Col-1)))
	}

	length := len(t.Text)
	if length == 0 {
		length = 1
	}

	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", length-1))

	return b.String()
}

// Text renders err in full, reading the offending line from the file named
// in err's token location.
func Text(err rouleaux.CompileError) string {
	t := err.Token()
	line := SourceLine(t.Loc.File, t.Loc.Row)

	return fmt.Sprintf(
		"Error @ [%s]: %s\n|\n|     %s\n|_    %s\n",
		t.Loc, err.Error(), line, identificationLine(t),
	)
}
