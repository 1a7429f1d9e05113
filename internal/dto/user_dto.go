package dto

// UserDTO is the full projection of a user crossing the API boundary.
// The ID pointer stays nil for unpersisted input; the create endpoint
// rejects bodies that already carry one.
type UserDTO struct {
	ID        *uint  `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthdate Date   `json:"birthdate"`
	Email     string `json:"email"`
}

// UserBasicDTO lists a user without contact details.
type UserBasicDTO struct {
	ID        *uint  `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserEmailDTO carries only the identifier and email address, used by
// the partial-email search.
type UserEmailDTO struct {
	ID    *uint  `json:"id"`
	Email string `json:"email"`
}
