package entity

// UserLoginData is the identity carried by a verified access token. Account
// storage lives in the upstream auth service; this backend only validates
// tokens and tags records with the user id.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
	Role     string
}
