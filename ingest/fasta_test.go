package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFasta(t *testing.T) {
	t.Run("parses multi record stream", func(t *testing.T) {
		input := ">seqA some description\nMKV LAT\nGLI\n>seqB\nACDEF\n"

		records, err := ParseFasta(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, Record{ID: "seqA", Description: "some description", Sequence: "MKVLATGLI"}, records[0])
		require.Equal(t, Record{ID: "seqB", Sequence: "ACDEF"}, records[1])
	})

	t.Run("header without body yields empty sequence", func(t *testing.T) {
		records, err := ParseFasta(strings.NewReader(">seqA\n"))

		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Empty(t, records[0].Sequence)
	})

	t.Run("data before first header rejected", func(t *testing.T) {
		_, err := ParseFasta(strings.NewReader("MKVLAT\n>seqA\n"))

		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("empty header rejected", func(t *testing.T) {
		_, err := ParseFasta(strings.NewReader(">\nMKVLAT\n"))

		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("empty stream yields no records", func(t *testing.T) {
		records, err := ParseFasta(strings.NewReader(""))

		require.NoError(t, err)
		require.Empty(t, records)
	})
}

func TestLengths(t *testing.T) {
	records := []Record{
		{ID: "seqA", Sequence: "MKVLAT"},
		{ID: "seqB", Sequence: "AC"},
	}

	require.Equal(t, map[string]int64{"seqA": 6, "seqB": 2}, Lengths(records))
}

func TestClean(t *testing.T) {
	t.Run("normalizes and filters", func(t *testing.T) {
		records := []Record{
			{ID: "upper", Sequence: "mkvlat"},
			{ID: "gapped", Sequence: "AC-DE.F*"},
			{ID: "ambiguous", Sequence: "ACDEX"},
			{ID: "empty", Sequence: "--"},
			{ID: "upper", Sequence: "ACDEF"},
		}

		cleaned, dropped := Clean(records)

		require.Equal(t, 3, dropped)
		require.Len(t, cleaned, 2)
		require.Equal(t, Record{ID: "upper", Sequence: "MKVLAT"}, cleaned[0])
		require.Equal(t, Record{ID: "gapped", Sequence: "ACDEF"}, cleaned[1])
	})

	t.Run("interior stop codon rejected", func(t *testing.T) {
		cleaned, dropped := Clean([]Record{{ID: "stop", Sequence: "AC*DE"}})

		require.Empty(t, cleaned)
		require.Equal(t, 1, dropped)
	})

	t.Run("no records is a no-op", func(t *testing.T) {
		cleaned, dropped := Clean(nil)

		require.Empty(t, cleaned)
		require.Zero(t, dropped)
	})
}
