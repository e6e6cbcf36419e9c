package material

import "errors"

// Phase is where a form instance is in its submit cycle:
// editing → submitting → (closed | editing-with-error).
type Phase string

const (
	PhaseEditing          Phase = "editing"
	PhaseSubmitting       Phase = "submitting"
	PhaseClosed           Phase = "closed"
	PhaseEditingWithError Phase = "editing-with-error"
)

var (
	// ErrSubmitInFlight rejects a second submit while the first is pending.
	ErrSubmitInFlight = errors.New("form is already being submitted")
	// ErrFormClosed rejects a submit after the form completed successfully.
	ErrFormClosed = errors.New("form was already submitted")
)

// FormState is the submit state machine of one form instance.
type FormState struct {
	Phase Phase
	Err   error
}

// Begin moves the form to submitting.
func (f *FormState) Begin() error {
	switch f.Phase {
	case PhaseSubmitting:
		return ErrSubmitInFlight
	case PhaseClosed:
		return ErrFormClosed
	default:
		f.Phase = PhaseSubmitting
		f.Err = nil
		return nil
	}
}

// Succeed closes the form.
func (f *FormState) Succeed() {
	f.Phase = PhaseClosed
	f.Err = nil
}

// Fail returns the form to editing with err attached.
func (f *FormState) Fail(err error) {
	f.Phase = PhaseEditingWithError
	f.Err = err
}

// CanSubmit reports whether the submit control should be enabled.
func (f FormState) CanSubmit() bool {
	return f.Phase != PhaseSubmitting && f.Phase != PhaseClosed
}
