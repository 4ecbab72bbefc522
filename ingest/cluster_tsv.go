package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedInput indicates a cluster TSV or FASTA stream that does not
// match its expected format.
var ErrMalformedInput = errors.New("seqsplit/ingest: malformed input")

// ParseClusterTSV parses MMseqs2 cluster output in createtsv format: one
// "representative<TAB>member" pair per line.
//
// Blank lines are skipped. A member listed under two different
// representatives is rejected, since the resulting mapping would not be a
// function.
//
// Parameters:
//   - r: TSV stream
//
// Returns:
//   - map[string]string: Member sequence ID to representative (cluster) ID
//   - error: ErrMalformedInput or the underlying read error
func ParseClusterTSV(r io.Reader) (map[string]string, error) {
	mapping := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		rep, member, ok := strings.Cut(text, "\t")
		if !ok || rep == "" || member == "" {
			return nil, fmt.Errorf("%w: line %d: expected representative<TAB>member, got %q",
				ErrMalformedInput, line, text)
		}

		if prev, seen := mapping[member]; seen && prev != rep {
			return nil, fmt.Errorf("%w: line %d: member %q listed under both %q and %q",
				ErrMalformedInput, line, member, prev, rep)
		}
		mapping[member] = rep
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cluster tsv: %w", err)
	}

	return mapping, nil
}
