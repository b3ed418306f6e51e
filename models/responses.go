package models

// MessageResponse is the uniform envelope for every informational and error
// response the API produces: a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the success body of the login endpoints: the
// authenticated user record (password hash scrubbed by the model's JSON
// tags) and a freshly issued bearer token.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
