package models

// User carries the identity attached to owned resources. Account
// management lives outside this service.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
