package repo

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository struct {
	Db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{Db: db}
}

func (slf *JobRepository) FindByID(id uint) (models.Job, error) {
	var job models.Job
	err := slf.Db.Preload("ReportTo").First(&job, id).Error
	return job, err
}

func (slf *JobRepository) Create(job *models.Job) error {
	return slf.Db.Omit(clause.Associations).Create(job).Error
}

func (slf *JobRepository) Save(job *models.Job) error {
	return slf.Db.Omit(clause.Associations).Save(job).Error
}

func (slf *JobRepository) GetAll() ([]models.Job, error) {
	var jobs []models.Job
	err := slf.Db.Preload("ReportTo").Find(&jobs).Error
	return jobs, err
}

// NullChildren detaches every job reporting to the given job. Parent deletion
// cascades to null, never to delete.
func (slf *JobRepository) NullChildren(id uint) error {
	return slf.Db.Model(&models.Job{}).
		Where("report_to_id = ?", id).
		Update("report_to_id", nil).Error
}

// NullMembers detaches every user holding the given job.
func (slf *JobRepository) NullMembers(id uint) error {
	return slf.Db.Model(&models.User{}).
		Where("job_id = ?", id).
		Update("job_id", nil).Error
}

func (slf *JobRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Job{}, id).Error
}
