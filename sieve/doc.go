// Package sieve implements a parallel Sieve of Eratosthenes.
//
// The engine allocates a composite-marking table of bound+1 boolean slots
// and marks multiples of every base in [2, floor(sqrt(bound))]. Unmarked
// entries are prime.
//
// # Marking strategies
//
// Two strategies produce byte-identical tables and differ only in
// parallelization shape:
//
//   - OuterParallel (default): the candidate loop is split into one
//     contiguous chunk per worker, forked once. A worker may read a stale
//     "not composite" for a base a peer is still marking and redo that
//     base's multiples; the writes are idempotent boolean sets, so the
//     final fixed point is unaffected and no lock is needed.
//   - InnerParallel: the candidate loop runs sequentially, and each
//     surviving base's multiples range is split across a persistent worker
//     pool with a join barrier per base. Composite bases are always fully
//     resolved before they are examined, so no redundant marking happens.
//
// Both strategies use static partitioning: contiguous fixed chunks assigned
// up front, no rebalancing. Per-element marking cost is uniform, so there
// is nothing for a dynamic scheduler to win.
//
// # Table ownership
//
// The engine owns the table while marking; the returned Table is read-only.
// Callers defer Table.Release, which is idempotent and returns any reserved
// memory budget on every path.
package sieve
