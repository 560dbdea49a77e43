package response

import "time"

type UserResponseDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	Gender      *string   `json:"gender,omitempty"`
	Country     *string   `json:"country,omitempty"`
	State       *string   `json:"state,omitempty"`
	IsSuperuser bool      `json:"isSuperuser"`
	IsActive    bool      `json:"isActive"`
	JobID       *uint     `json:"jobId,omitempty"`
	ReportToID  *uint     `json:"reportToId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
