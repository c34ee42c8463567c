// Package testutil provides shared helpers for dirsh tests: declarative
// tree fixtures under t.TempDir() and content assertions.
package testutil
