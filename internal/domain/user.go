package domain

// User is a registered account. PasswordHash holds an argon2id PHC string
// and never leaves the service layer.
type User struct {
	Record
	Fullname     string `json:"fullname,omitempty"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
