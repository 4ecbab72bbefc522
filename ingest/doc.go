// Package ingest reads the input artifacts a partition request is built from:
// MMseqs2 cluster TSV files and FASTA sequence files.
//
// The parsers produce the plain maps the splitter consumes, so a typical
// pipeline is:
//
//	mapping, err := ingest.ParseClusterTSV(tsvFile)
//	records, err := ingest.ParseFasta(fastaFile)
//	result, err := sp.Split(ctx, mapping, seqsplit.WithWeights(ingest.Lengths(records)))
package ingest
