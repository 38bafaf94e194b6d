// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// ReadCandidates reads one candidate per line, trimming surrounding whitespace and
// skipping blank lines.
func ReadCandidates(reader io.Reader) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

// LoadCandidates collects candidates from path followed by args. A path of "-" reads from
// stdin; an empty path reads nothing.
func LoadCandidates(path string, stdin io.Reader, args []string) ([]string, error) {
	var candidates []string

	switch path {
	case "":
	case "-":
		fromStdin, err := ReadCandidates(stdin)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, fromStdin...)
	default:
		file, err := os.Open(path) //nolint:gosec // path is provided by the operator
		if err != nil {
			return nil, fmt.Errorf("failed to open candidates file: %w", err)
		}
		defer func() { _ = file.Close() }()

		fromFile, err := ReadCandidates(file)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, fromFile...)
	}

	return append(candidates, args...), nil
}
