package request

import "time"

type RegisterUserDTO struct {
	Email              string     `json:"email" validate:"required,email"`
	Password1          string     `json:"password1" validate:"required,min=6"`
	Password2          string     `json:"password2" validate:"required,eqfield=Password1"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Gender             *string    `json:"gender" validate:"omitempty,oneof=M F"`
	Birthday           *time.Time `json:"birthday"`
	TermsAndConditions bool       `json:"termsAndConditions" validate:"required"`
	Country            *string    `json:"country"`
	State              *string    `json:"state"`
	IsSuperuser        bool       `json:"isSuperuser"`
	JobID              *uint      `json:"jobId"`
	ReportToID         *uint      `json:"reportToId"`
}

type UpdateUserDTO struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=M F"`
	Country    *string `json:"country"`
	State      *string `json:"state"`
	IsActive   *bool   `json:"isActive"`
	JobID      *uint   `json:"jobId"`
	ReportToID *uint   `json:"reportToId"`
}
