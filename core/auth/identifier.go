package auth

import (
	"strings"

	"github.com/kibraconnect/appkit/core/validator"
)

// identifierKind is the client-side classification of a login identifier.
// Classification exists solely to produce precise local validation messages;
// the backend remains the sole authority on whether credentials are valid.
type identifierKind int

const (
	identifierUsername identifierKind = iota
	identifierEmail
	identifierPhone
)

func classifyIdentifier(s string) identifierKind {
	switch {
	case strings.Contains(s, "@"):
		return identifierEmail
	case validator.IsNumeric(s):
		return identifierPhone
	default:
		return identifierUsername
	}
}

// identifierRule validates the identifier according to its classified kind.
// Anything that is neither email-shaped nor all-digits is an opaque username
// and passes as long as it is non-empty.
func identifierRule(value string) validator.Rule {
	switch classifyIdentifier(value) {
	case identifierEmail:
		return validator.Email("identifier", value)
	case identifierPhone:
		return validator.Phone("identifier", value)
	default:
		return validator.Required("identifier", value)
	}
}
