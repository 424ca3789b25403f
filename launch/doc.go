// Package launch starts the DiskBench executable as a detached process.
//
// It defines the Launcher interface which wraps os/exec functionality,
// enabling easier testing and mocking of the invocation path. The real
// launcher is fire-and-forget: the child is created in its own process group,
// never waited on, and its handle is released immediately after a successful
// start.
package launch
