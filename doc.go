// Package seqsplit partitions clustered protein sequences into disjoint
// dataset splits without homology leakage.
//
// Sequences in the same similarity cluster are statistically dependent, so
// naive random train/test splitting inflates apparent model performance.
// Seqsplit takes a sequence-to-cluster mapping (computed externally, e.g. by
// MMseqs2) and a set of target split ratios, and decides which whole clusters
// go into which split so that realized split sizes approximate the targets:
// an exact branch-and-bound search under a wall-clock budget, with a
// deterministic greedy fallback when the budget runs out.
//
// # Quick Start
//
// Basic 70/30 train/test split:
//
//	import "github.com/arloliu/seqsplit"
//
//	sp, err := seqsplit.New(seqsplit.TrainTestConfig(0.3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sp.Split(ctx, mapping) // mapping: sequence ID -> cluster ID
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	train := result.Members("train")
//	test := result.Members("test")
//
// # Key Features
//
//   - Leakage-safe: clusters are atomic, all members land in the same split
//   - Exact optimization: branch-and-bound minimizes deviation from targets
//   - Bounded solve time: time budget enforced via context deadline, with
//     automatic greedy fallback and an explicit status flag on every result
//   - Weighted sizing: count-based by default, residue-length (or any) weights
//     via WithWeights
//   - Constrained splits: pin sequences to named splits with WithPinnedSequences
//   - Cluster-aware k-fold: reproducible folds via a seeded permutation
//
// # Advanced Usage
//
// Custom solver and structured logging:
//
//	import (
//	    "github.com/arloliu/seqsplit"
//	    "github.com/arloliu/seqsplit/solver"
//	)
//
//	cfg := &seqsplit.Config{
//	    Splits: []seqsplit.SplitTarget{
//	        {Name: "train", Fraction: 0.8},
//	        {Name: "val", Fraction: 0.1},
//	        {Name: "test", Fraction: 0.1},
//	    },
//	    Tolerance:    0.05,
//	    Objective:    seqsplit.ObjectiveMax,
//	    SolveTimeout: 10 * time.Second,
//	}
//
//	sp, err := seqsplit.New(cfg,
//	    seqsplit.WithSolver(solver.NewBranchBound()),
//	    seqsplit.WithLogger(myLogger),
//	)
//
// See the ingest package for MMseqs2 cluster TSV and FASTA helpers.
package seqsplit
