// Package testing provides test helpers for the seqsplit library.
//
// Import with an alias to avoid clashing with the standard library testing
// package:
//
//	sstesting "github.com/arloliu/seqsplit/testing"
package testing
