package netlist

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/schematic/pkg/errors"
)

// IsComment reports whether a line is blank or a '#'/'%' comment.
func IsComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || line[0] == '#' || line[0] == '%'
}

// ParseLine parses one netlist line of the form
//
//	Name N1 N2 [args...] [; options]
//
// Blank and comment lines yield a nil element and a nil error. Anonymous
// identifiers are drawn from counter.
func ParseLine(line string, counter *Counter) (*Element, error) {
	if IsComment(line) {
		return nil, nil
	}
	line = strings.TrimSpace(line)

	spec, optStr, _ := strings.Cut(line, ";")
	opts, err := ParseOptions(optStr)
	if err != nil {
		return nil, &errors.MalformedElementError{Line: line, Reason: err.Error()}
	}

	fields := strings.Fields(spec)
	if len(fields) < 3 {
		return nil, &errors.MalformedElementError{
			Line:   line,
			Reason: fmt.Sprintf("expected a name and two terminals, got %d fields", len(fields)),
		}
	}

	e, err := NewElement(fields[0], fields[1], fields[2], fields[3:], opts, counter)
	if err != nil {
		var malformed *errors.MalformedElementError
		if stderrors.As(err, &malformed) {
			malformed.Line = line
		}
		return nil, err
	}
	return e, nil
}

// Read parses a whole netlist. It stops at the first malformed line and
// reports its line number.
func Read(r io.Reader, opts ...Option) (*Netlist, error) {
	n := New(opts...)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := n.Add(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read netlist: %w", err)
	}
	return n, nil
}

// ReadFile parses the netlist file at path.
func ReadFile(path string, opts ...Option) (*Netlist, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open netlist %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts...)
}
