// Package file provides the TOML-backed configuration store and a
// watcher that reloads it when the file changes on disk.
package file
