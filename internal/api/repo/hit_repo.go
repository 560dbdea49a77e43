package repo

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HitRepository struct {
	Db *gorm.DB
}

func NewHitRepository(db *gorm.DB) *HitRepository {
	return &HitRepository{Db: db}
}

func (slf *HitRepository) FindByID(id uint) (models.Hit, error) {
	var hit models.Hit
	err := slf.Db.Preload("AssignedTo").Preload("CreatedBy").First(&hit, id).Error
	return hit, err
}

func (slf *HitRepository) Create(hit *models.Hit) error {
	return slf.Db.Omit(clause.Associations).Create(hit).Error
}

// CurrentStatus re-reads the persisted status of a hit, bypassing whatever the
// caller mutated in memory.
func (slf *HitRepository) CurrentStatus(id uint) (models.HitStatus, error) {
	var hit models.Hit
	if err := slf.Db.Select("status").First(&hit, id).Error; err != nil {
		return 0, err
	}
	return hit.Status, nil
}

// UpdateIfNotTerminal writes every mutable column of an existing hit, guarded
// by a predicate on the persisted status. The returned row count is zero when
// the row was already failed or completed, so the terminal-state rule holds
// even against a writer that slipped in after the status was re-read.
func (slf *HitRepository) UpdateIfNotTerminal(hit *models.Hit) (int64, error) {
	result := slf.Db.Model(&models.Hit{}).
		Where("id = ? AND status NOT IN ?", hit.ID, []models.HitStatus{models.HitFailed, models.HitCompleted}).
		Updates(map[string]interface{}{
			"assigned_to_id": hit.AssignedToID,
			"target_name":    hit.TargetName,
			"description":    hit.Description,
			"status":         hit.Status,
			"created_by_id":  hit.CreatedByID,
		})
	return result.RowsAffected, result.Error
}

func (slf *HitRepository) GetAll() ([]models.Hit, error) {
	var hits []models.Hit
	err := slf.Db.Preload("AssignedTo").Preload("CreatedBy").
		Order("created_at DESC").
		Find(&hits).Error
	return hits, err
}

func (slf *HitRepository) Count() (int64, error) {
	var count int64
	err := slf.Db.Model(&models.Hit{}).Count(&count).Error
	return count, err
}
