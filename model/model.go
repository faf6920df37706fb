package model

// State is the visible state of the meal analysis window
type State int

const (
	// StateIdle shows the placeholder text; no analysis has succeeded yet
	StateIdle State = iota
	// StateShowingResult shows the text of the last successful analysis
	StateShowingResult
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateShowingResult:
		return "showing-result"
	}
	return "unknown"
}
