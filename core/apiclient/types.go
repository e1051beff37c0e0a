package apiclient

// TokenPair is the backend's answer to a successful credential or federated
// login: a short-lived access token (JWT) and an opaque refresh token,
// plus the authenticated user.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

// User is the user object embedded in login responses.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile is the account profile returned by the users endpoint.
type Profile struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

// Post is a single entry of the content feed.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RegistrationRequest carries the signup form fields. Password1/Password2
// mirror the backend's field names so its field-level errors map back
// directly onto the form.
type RegistrationRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type verifyEmailRequest struct {
	VerificationCode string `json:"verification_code"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
	NewPassword      string `json:"new_password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshedTokens is the refresh exchange result. Refresh is empty unless
// the backend rotates refresh tokens.
type RefreshedTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
