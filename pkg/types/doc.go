// Package types defines the core types and interfaces used throughout dirsh.
// This includes the FS filesystem capability interface and the Outcome
// record commands hand back to the session loop.
package types
