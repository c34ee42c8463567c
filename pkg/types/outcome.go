package types

// Effect tells the session loop how to react to a command's outcome.
// Termination and cursor movement are tagged here rather than inferred
// from the outcome text, so a command whose output happens to be the
// word "exit" cannot end the session.
type Effect int

const (
	// EffectNone means the loop prints the outcome text and continues.
	EffectNone Effect = iota
	// EffectExit means the loop prints the outcome text and terminates.
	EffectExit
	// EffectSetCursor means the loop replaces the cursor with
	// Outcome.Cursor and suppresses printing.
	EffectSetCursor
)

// Outcome is the result of executing a command.
type Outcome struct {
	Text   string
	Effect Effect
	Cursor string
}

// TextOutcome builds a plain printable outcome.
func TextOutcome(text string) Outcome {
	return Outcome{Text: text}
}

// ExitOutcome builds the session-terminating outcome.
func ExitOutcome() Outcome {
	return Outcome{Text: "exit", Effect: EffectExit}
}

// CursorOutcome builds an outcome that moves the session cursor.
func CursorOutcome(path string) Outcome {
	return Outcome{Effect: EffectSetCursor, Cursor: path}
}
