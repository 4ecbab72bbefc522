// Package solver provides built-in cluster-to-split solver implementations.
//
// Solvers decide which whole clusters go into which dataset split so that
// realized split sizes approximate the target fractions. The package includes
// three implementations behind the types.Solver interface:
//
//   - BranchBound: Exact depth-first branch-and-bound search. Minimizes the
//     configured deviation objective and proves optimality when it completes
//     within the context deadline; otherwise returns its best incumbent.
//   - Greedy: Largest-cluster-first load balancing. Fast, deterministic, and
//     always feasible, with the classical multiway-partitioning
//     approximation guarantee but no optimality.
//   - Fallback: Composes a primary solver with a fallback. Solver timeouts
//     without an incumbent and unavailable optimizers trigger the fallback;
//     every other error propagates.
//
// # Solver Selection Guide
//
// BranchBound:
//   - Use when split balance matters and cluster counts are moderate
//   - Bounded by the context deadline; never left running indefinitely
//   - Configuration: deadline check interval
//
// Greedy:
//   - Use for very large cluster counts or hard latency budgets
//   - O(n log n), no search
//
// Fallback:
//   - The default composition: exact first, greedy when the budget runs out
//
// Custom solvers can be implemented by satisfying the types.Solver interface,
// for example a binding to an external MILP optimizer.
package solver
