package models

// MessageResponse is a generic informational JSON payload
// ({"message": "..."}) used by the health, login, and logout endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login. Token carries the opaque
// AuthToken key the client should present on subsequent requests.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}
