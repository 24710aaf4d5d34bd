package components

// LoginSubmitMsg is sent when the login form is submitted.
type LoginSubmitMsg struct {
	Email    string
	Password string
	SignUp   bool
}

// GoogleLoginMsg requests a federated sign-in.
type GoogleLoginMsg struct{}

// GuestMsg requests guest mode.
type GuestMsg struct{}
