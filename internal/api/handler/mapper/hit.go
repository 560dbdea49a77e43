package mapper

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/response"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
)

type HitMapper struct{}

func (HitMapper) EntityToHitResponse(hit models.Hit) response.HitResponseDTO {
	return response.HitResponseDTO{
		ID:           hit.ID,
		TargetName:   hit.TargetName,
		Description:  hit.Description,
		Status:       int16(hit.Status),
		StatusLabel:  hit.Status.String(),
		AssignedToID: hit.AssignedToID,
		CreatedByID:  hit.CreatedByID,
		CreatedAt:    hit.CreatedAt,
		UpdatedAt:    hit.UpdatedAt,
	}
}
