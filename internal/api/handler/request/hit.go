package request

type CreateHitDTO struct {
	TargetName   string `json:"targetName" validate:"required,max=150"`
	Description  string `json:"description" validate:"max=250"`
	CreatedByID  *uint  `json:"createdById"`
	AssignedToID *uint  `json:"assignedToId"`
}

type AssignHitDTO struct {
	UserID uint `json:"userId" validate:"required"`
}

type UpdateHitDTO struct {
	TargetName  *string `json:"targetName" validate:"omitempty,max=150"`
	Description *string `json:"description" validate:"omitempty,max=250"`
	Status      *int16  `json:"status" validate:"omitempty,oneof=1 2 3 4"`
}
