package pipeline

import "github.com/google/uuid"

type EntryType string

const (
	RunEntry  EntryType = "run"
	StepEntry EntryType = "step"
)

// HistoryEntry is one line of the pipeline history. Run entries carry the arguments given to
// Run, step entries the label and the result of a step.
type HistoryEntry struct {
	Type   EntryType
	RunID  uuid.UUID
	Args   []any
	Step   string
	Result Result
}
