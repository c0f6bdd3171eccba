package models

// RegisterRequest is the JSON body of the registration endpoint.
// Password fields are write-only and never serialized back to the client.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Credentials is the JSON body of the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
