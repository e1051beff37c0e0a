// Package validator provides pre-submission validation of user-supplied
// request fields with per-field error reporting.
//
// Rules are plain closures evaluated by Apply, which returns a
// ValidationErrors map keyed by field name. Local validation always runs
// before a network call is made; the backend remains the authority on
// whether the values are actually acceptable.
//
//	err := validator.Apply(
//		validator.Required("email", email),
//		validator.Email("email", email),
//		validator.Required("password", password),
//		validator.MinRunes("password", password, 8),
//	)
//	if err != nil {
//		var verrs validator.ValidationErrors
//		errors.As(err, &verrs) // per-field messages for the UI
//	}
//
// Format rules (Email, Phone, MinRunes) pass on empty input so that
// "missing" and "malformed" surface as distinct messages; compose them with
// Required.
package validator
