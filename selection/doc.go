// Package selection models the host-owned item selection handed to the command.
//
// The command only ever needs two things from a selection: how many items it holds
// and the filesystem path of the first one. The Selection interface captures exactly
// that, so hosts adapt their native selection type and tests use plain slices.
package selection
