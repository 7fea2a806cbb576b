package form

// FailedMessage is shown while the generic error flag is set.
const FailedMessage = "An error occurred during the save."

// State of a form's submission lifecycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Outcome of a Submit call.
type Outcome int

const (
	// OutcomeInvalid: client-side validation failed, nothing was sent.
	OutcomeInvalid Outcome = iota
	// OutcomeSaved: the server accepted the draft and OnSave was called.
	OutcomeSaved
	// OutcomeRejected: the server returned field errors; they were merged.
	OutcomeRejected
	// OutcomeFailed: transport or unexpected-status failure; the generic error flag is set.
	OutcomeFailed
	// OutcomeIgnored: a submission was already in flight or the form is disposed.
	OutcomeIgnored
	// OutcomeDropped: the response arrived after Dispose and was discarded.
	OutcomeDropped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSaved:
		return "saved"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeDropped:
		return "dropped"
	default:
		return "unknown"
	}
}
