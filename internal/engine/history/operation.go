package history

import "time"

// OperationInfo provides read-only info about a recorded command.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the command was created
	Offset      int       // Byte the command touched
}
