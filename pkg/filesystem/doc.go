// Package filesystem provides filesystem implementations for dirsh.
//
// This package contains implementations of the types.FS interface.
// The shell only ever talks to the filesystem through that interface,
// so commands can be tested against any implementation.
package filesystem
