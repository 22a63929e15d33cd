package models

// Request and response contracts for the HTTP surface. Every route has an
// explicit typed shape; handlers never reach into raw maps.

// Credentials is the request body for both registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic success envelope ({"message": ...}).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic failure envelope ({"error": ...}).
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListBooksResponse is the paginated listing envelope.
// TotalCount is the number of records matching the search filter,
// independent of Page and Limit.
type ListBooksResponse struct {
	Data       []Book `json:"data"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalCount int64  `json:"totalCount"`
}
