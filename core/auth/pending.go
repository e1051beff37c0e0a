package auth

// ResetStep tracks how far a password reset has progressed.
type ResetStep int

const (
	// StepEmailEntered: the email is captured but the backend has not yet
	// accepted it.
	StepEmailEntered ResetStep = iota
	// StepCodeAndPassword: the backend accepted the email and mailed a
	// code; the code and new password may now be submitted.
	StepCodeAndPassword
)

// String implements fmt.Stringer.
func (s ResetStep) String() string {
	if s == StepCodeAndPassword {
		return "code_and_password"
	}
	return "email_entered"
}

// PendingResetRequest is the ephemeral, in-memory progress of a password
// reset. It is created when the user starts a reset, advances when the
// backend accepts the email, and is destroyed on successful confirmation.
// Failures are non-destructive: the user may retry the current step.
type PendingResetRequest struct {
	Email string
	Step  ResetStep
}
