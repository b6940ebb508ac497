// Package wizard drives the multi-step conversation that collects an event's
// title, date, time, and location, one inbound message per step.
package wizard

// Step identifies which field the conversation is currently collecting.
// Steps only move forward; a failed validation keeps the session on the same
// step and re-prompts.
type Step int

const (
	// StepTitle awaits the event title. Any text, including empty, is accepted.
	StepTitle Step = iota
	// StepDate awaits a date in one of the recognized formats.
	StepDate
	// StepTime awaits a time of day in one of the recognized formats.
	StepTime
	// StepLocation awaits the location; accepting it completes the wizard.
	StepLocation
)

// EventDraft is the in-progress event being filled across turns. Date and
// Time hold canonical forms only; they are never set from unvalidated input.
type EventDraft struct {
	Title    string
	Date     string
	Time     string
	Location string
}

// Session is the per-conversation wizard state. One session per conversation;
// restarting the wizard replaces it.
type Session struct {
	Step  Step
	Draft EventDraft
}

// Reply is the outgoing message produced by one wizard turn.
type Reply struct {
	Text           string
	HTML           bool
	RemoveKeyboard bool
}
