package response

import "time"

type HitResponseDTO struct {
	ID           uint      `json:"id"`
	TargetName   string    `json:"targetName"`
	Description  string    `json:"description"`
	Status       int16     `json:"status"`
	StatusLabel  string    `json:"statusLabel"`
	AssignedToID *uint     `json:"assignedToId,omitempty"`
	CreatedByID  *uint     `json:"createdById,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
