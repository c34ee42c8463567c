// Package archive implements the pack and unpack operations behind the
// shell's archive command.
//
// Packing walks a source tree depth-first in pre-order, skipping hidden
// entries, and streams file bytes into zip entries named relative to the
// source's base name. Directories produce no entries of their own; they
// are implicit in the slash-separated entry names. As a consequence,
// empty directories are not represented in an archive and cannot be
// reconstructed by unpacking.
package archive
