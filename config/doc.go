// Package config resolves the DiskBench tool location from persistent
// key-value configuration.
//
// Resolution tries the machine-wide scope first and the per-user scope second,
// fresh on every call; nothing is cached, so a repair install is picked up by
// the next host query. On Windows the backing store is the registry key
// SOFTWARE\DiskBench\ShellExtension written by the installer; elsewhere a JSON
// file store with the same two scopes stands in.
package config
