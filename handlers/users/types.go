package users

// Error and status message constants. The exact wording is part of the wire
// contract the front-end was written against.
const (
	ErrInvalidData        = "Invalid data format."
	ErrUserExists         = "User already exists. Please login."
	ErrDatabaseError      = "Database error"
	MsgLoginSuccess       = "Login successfull"
	MsgEmailNotRegistered = "Email and Mobile Number is not registered"
)

// SigninRequest model for the signin endpoint
type SigninRequest struct {
	Email string `json:"email" binding:"required"`
}

// SigninResponse model for signin responses
type SigninResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
}
