// Package commands contains the shell's command vocabulary: the registry
// mapping command names to constructors, the line parser, and one command
// type per operation.
//
// Commands are pure with respect to the session: they receive the cursor,
// touch the filesystem only through the types.FS capability, and return a
// types.Outcome. The session loop interprets the outcome's effect.
package commands
