// Package prompt resolves destination collisions, either by asking the
// operator or by applying a fixed policy.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Term asks on every collision by reading one line from its input. Only
// an explicit "r" (trimmed, case-insensitive) means replace; any other
// answer, including a read error, means skip. The read blocks without a
// timeout.
type Term struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerm(in io.Reader, out io.Writer) *Term {
	return &Term{reader: bufio.NewReader(in), out: out}
}

func (t *Term) Replace(targetName string) bool {
	fmt.Fprintf(t.out, "The file %s already exists in the target directory. Replace or skip? (r/s): ", targetName)
	answer, _ := t.reader.ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer)) == "r"
}

// Policy is a fixed collision answer for non-interactive callers.
type Policy bool

const (
	AlwaysReplace Policy = true
	AlwaysSkip    Policy = false
)

func (p Policy) Replace(string) bool {
	return bool(p)
}
