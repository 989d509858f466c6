//go:build !debug

// Package debug reports whether the module was built with the debug tag.
package debug

const Debug = false
