package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClusterTSV(t *testing.T) {
	t.Run("parses createtsv output", func(t *testing.T) {
		input := "rep1\trep1\nrep1\tseqA\nrep1\tseqB\n\nrep2\trep2\nrep2\tseqC\n"

		mapping, err := ParseClusterTSV(strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"rep1": "rep1",
			"seqA": "rep1",
			"seqB": "rep1",
			"rep2": "rep2",
			"seqC": "rep2",
		}, mapping)
	})

	t.Run("tolerates crlf line endings", func(t *testing.T) {
		mapping, err := ParseClusterTSV(strings.NewReader("rep1\tseqA\r\nrep1\tseqB\r\n"))

		require.NoError(t, err)
		require.Len(t, mapping, 2)
		require.Equal(t, "rep1", mapping["seqA"])
	})

	t.Run("repeated identical pair is idempotent", func(t *testing.T) {
		mapping, err := ParseClusterTSV(strings.NewReader("rep1\tseqA\nrep1\tseqA\n"))

		require.NoError(t, err)
		require.Len(t, mapping, 1)
	})

	t.Run("member under two representatives rejected", func(t *testing.T) {
		_, err := ParseClusterTSV(strings.NewReader("rep1\tseqA\nrep2\tseqA\n"))

		require.ErrorIs(t, err, ErrMalformedInput)
		require.Contains(t, err.Error(), "seqA")
	})

	t.Run("missing tab rejected", func(t *testing.T) {
		_, err := ParseClusterTSV(strings.NewReader("rep1 seqA\n"))

		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		_, err := ParseClusterTSV(strings.NewReader("rep1\t\n"))

		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("empty stream yields empty mapping", func(t *testing.T) {
		mapping, err := ParseClusterTSV(strings.NewReader(""))

		require.NoError(t, err)
		require.Empty(t, mapping)
	})
}
