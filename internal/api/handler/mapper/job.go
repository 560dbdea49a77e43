package mapper

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/response"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
)

type JobMapper struct{}

func (JobMapper) EntityToJobResponse(job models.Job) response.JobResponseDTO {
	dto := response.JobResponseDTO{
		ID:         job.ID,
		Name:       job.Name,
		ReportToID: job.ReportToID,
	}
	if job.ReportTo != nil {
		dto.ReportTo = &job.ReportTo.Name
	}
	return dto
}
