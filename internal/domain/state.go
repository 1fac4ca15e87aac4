package domain

// State is the lifecycle state shared by resumes and vacancies. Each entity
// instance moves through it independently: created as DRAFT, published once,
// hidden from PUBLISHED. There is no transition out of HIDDEN.
type State string

const (
	StateDraft     State = "DRAFT"
	StatePublished State = "PUBLISHED"
	StateHidden    State = "HIDDEN"
)

func (s State) Valid() bool {
	switch s {
	case StateDraft, StatePublished, StateHidden:
		return true
	}
	return false
}

// EnsureState checks membership of current in allowed. Transition methods
// call it between taking the row lock and writing; a failure leaves the row
// untouched.
func EnsureState(current State, allowed ...State) error {
	for _, s := range allowed {
		if current == s {
			return nil
		}
	}
	return ErrWrongState
}
