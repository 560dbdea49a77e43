package models

import (
	"time"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
)

// Job is a node in the organizational tree. If the organization grows,
// we can diagram it here.
type Job struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:150;not null"`
	ReportToID *uint     `gorm:"column:report_to_id"`
	ReportTo   *Job      `gorm:"foreignKey:ReportToID;constraint:OnDelete:SET NULL"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}

// ValidateChainOfCommand checks that candidate is the designated parent of
// this job. A root job has no designated parent, so nothing can satisfy the
// check and it always fails.
func (slf *Job) ValidateChainOfCommand(candidate *Job) error {
	if candidate == nil || slf.ReportToID == nil || *slf.ReportToID != candidate.ID {
		return apperr.ErrChainOfCommand
	}
	return nil
}
