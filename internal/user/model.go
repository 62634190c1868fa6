package user

type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Email string `json:"email" binding:"required,email" validate:"required,email"`
}

// UpdateUserRequest is a partial update: only present fields are
// applied. Absent and null are equivalent.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
