// Package command implements the DiskBench "Benchmark Drive Performance"
// Explorer command: identity and state queries, reference-counted lifetime,
// and the invocation path that launches the benchmark tool against the
// selected drive root.
//
// The host is free-threaded: the only concurrent state is the per-instance
// reference count, kept correct with atomic increments. Everything else is
// stateless per call; configuration is re-read on every query.
package command
