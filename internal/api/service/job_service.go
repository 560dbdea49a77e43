package service

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/repo"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// JobService maintains the organizational tree and answers chain-of-command
// questions for the user directory.
type JobService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewJobService(db *gorm.DB, logger zerolog.Logger) *JobService {
	return &JobService{db: db, logger: logger}
}

func (slf *JobService) Create(name string, reportToID *uint) (*models.Job, error) {
	job := models.Job{Name: name, ReportToID: reportToID}
	if err := slf.Save(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Save persists a job after walking its reporting chain. A chain that loops
// back onto the job itself is rejected, so the forest stays acyclic.
func (slf *JobService) Save(job *models.Job) error {
	return slf.db.Transaction(func(tx *gorm.DB) error {
		jobs := repo.NewJobRepository(tx)

		seen := map[uint]bool{job.ID: true}
		nextID := job.ReportToID
		for nextID != nil {
			if seen[*nextID] {
				slf.logger.Warn().Uint("jobId", job.ID).Uint("ancestorId", *nextID).
					Msg("Reporting chain loops back on itself")
				return apperr.ErrChainOfCommand
			}
			seen[*nextID] = true
			parent, err := jobs.FindByID(*nextID)
			if err != nil {
				return err
			}
			nextID = parent.ReportToID
		}

		return jobs.Save(job)
	})
}

// ValidateChainOfCommand checks that candidate is the designated parent of the
// given job.
func (slf *JobService) ValidateChainOfCommand(jobID, candidateID uint) error {
	jobs := repo.NewJobRepository(slf.db)
	job, err := jobs.FindByID(jobID)
	if err != nil {
		return err
	}
	candidate, err := jobs.FindByID(candidateID)
	if err != nil {
		return err
	}
	return job.ValidateChainOfCommand(&candidate)
}

func (slf *JobService) GetByID(id uint) (*models.Job, error) {
	job, err := repo.NewJobRepository(slf.db).FindByID(id)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (slf *JobService) GetAll() ([]models.Job, error) {
	return repo.NewJobRepository(slf.db).GetAll()
}

// Delete removes a job. Children keep existing as roots and members keep their
// accounts: both references cascade to null, nothing cascades to delete.
func (slf *JobService) Delete(id uint) error {
	return slf.db.Transaction(func(tx *gorm.DB) error {
		jobs := repo.NewJobRepository(tx)
		if err := jobs.NullChildren(id); err != nil {
			return err
		}
		if err := jobs.NullMembers(id); err != nil {
			return err
		}
		return jobs.Delete(id)
	})
}
