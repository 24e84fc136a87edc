package dto

import "github.com/google/uuid"

type CreateContactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Relation string `json:"relation" validate:"omitempty,max=50"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Priority int    `json:"priority" validate:"omitempty,gte=1,lte=10"`
}

type ContactResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Relation string    `json:"relation,omitempty"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email,omitempty"`
	Priority int       `json:"priority"`
}

type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int               `json:"total"`
}
