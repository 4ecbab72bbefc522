package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// aminoAlphabet is the 20 standard amino acid codes accepted by Clean.
const aminoAlphabet = "ACDEFGHIKLMNPQRSTVWY"

// Record is one FASTA entry.
type Record struct {
	// ID is the first whitespace-delimited token of the header line.
	ID string

	// Description is the remainder of the header line, empty if absent.
	Description string

	// Sequence is the concatenated sequence body.
	Sequence string
}

// ParseFasta parses a FASTA stream into records in file order.
//
// Sequence lines belonging to one header are concatenated; interior
// whitespace is removed. Data before the first header and headers with an
// empty ID are rejected.
//
// Parameters:
//   - r: FASTA stream
//
// Returns:
//   - []Record: Parsed records in file order
//   - error: ErrMalformedInput or the underlying read error
func ParseFasta(r io.Reader) ([]Record, error) {
	var records []Record
	var cur *Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, ">") {
			header := strings.TrimSpace(text[1:])
			id, desc, _ := strings.Cut(header, " ")
			if id == "" {
				return nil, fmt.Errorf("%w: line %d: header with empty sequence ID", ErrMalformedInput, line)
			}

			records = append(records, Record{ID: id, Description: strings.TrimSpace(desc)})
			cur = &records[len(records)-1]

			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("%w: line %d: sequence data before first header", ErrMalformedInput, line)
		}
		cur.Sequence += strings.Join(strings.Fields(text), "")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fasta: %w", err)
	}

	return records, nil
}

// Lengths returns per-sequence residue counts keyed by record ID, in the
// shape WithWeights expects. Later duplicates of an ID win, matching the
// usual last-entry-wins convention of FASTA tooling.
func Lengths(records []Record) map[string]int64 {
	lengths := make(map[string]int64, len(records))
	for _, rec := range records {
		lengths[rec.ID] = int64(len(rec.Sequence))
	}

	return lengths
}

// Clean normalizes records for clustering and splitting:
//   - sequences are uppercased
//   - gap characters ('-', '.') and a trailing stop ('*') are stripped
//   - records left empty or containing residues outside the 20 standard
//     amino acid codes are dropped
//   - duplicate IDs are dropped, keeping the first occurrence
//
// Parameters:
//   - records: Records to normalize
//
// Returns:
//   - []Record: Cleaned records, in input order
//   - int: Number of records dropped
func Clean(records []Record) ([]Record, int) {
	cleaned := make([]Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	dropped := 0

	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			dropped++
			continue
		}

		seq := strings.ToUpper(rec.Sequence)
		seq = strings.Map(func(r rune) rune {
			if r == '-' || r == '.' {
				return -1
			}
			return r
		}, seq)
		seq = strings.TrimSuffix(seq, "*")

		if seq == "" || !validResidues(seq) {
			dropped++
			continue
		}

		seen[rec.ID] = struct{}{}
		rec.Sequence = seq
		cleaned = append(cleaned, rec)
	}

	return cleaned, dropped
}

func validResidues(seq string) bool {
	for _, r := range seq {
		if !strings.ContainsRune(aminoAlphabet, r) {
			return false
		}
	}

	return true
}
