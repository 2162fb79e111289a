package models

// ShippingAddress is owned by exactly one user. No two addresses of the
// same user may share the same (street, city, state).
type ShippingAddress struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	UserID string `json:"user_id"`
}

// SameContent reports whether the stored address already carries the
// submitted street/city/state values.
func (a ShippingAddress) SameContent(street, city, state string) bool {
	return a.Street == street && a.City == city && a.State == state
}
