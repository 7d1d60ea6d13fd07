package domain

import "errors"

var ErrMissingFields = errors.New("username, email and password are required")
var ErrMissingCredentials = errors.New("email and password are required")
var ErrMemberExists = errors.New("username or email already in use")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrMemberNotFound = errors.New("member not found")

// Member is a registered shopper. Username and email are unique across the
// store; ids are generated sequentially on insert.
//
// Password is stored and compared verbatim. That is the contract of this
// demo's login flow (an exact email+password lookup) and must be replaced
// with a salted hash before any real deployment.
type Member struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Phone     string `json:"phone,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
}
