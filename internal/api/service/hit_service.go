package service

import (
	"errors"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/repo"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HitService is the ledger of work placed on targets. A hit moves
// unassigned -> assigned -> failed|completed and never leaves a final status.
type HitService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewHitService(db *gorm.DB, logger zerolog.Logger) *HitService {
	return &HitService{db: db, logger: logger}
}

func (slf *HitService) Create(targetName, description string, createdBy *models.User) (*models.Hit, error) {
	hit := models.Hit{
		TargetName:  targetName,
		Description: description,
		Status:      models.HitUnassigned,
	}
	if createdBy != nil {
		hit.CreatedByID = &createdBy.ID
	}
	if err := slf.Save(&hit); err != nil {
		return nil, err
	}
	return &hit, nil
}

// Assign points the hit at a user and moves it to assigned. The eligibility of
// the user is decided by Save against the persisted row, not the one in hand.
func (slf *HitService) Assign(hit *models.Hit, user *models.User) error {
	if user == nil || user.ID == 0 {
		return apperr.ErrInvalidAssignee
	}
	hit.AssignedToID = &user.ID
	hit.AssignedTo = user
	hit.Status = models.HitAssigned
	return slf.Save(hit)
}

// Save is the validation gate for the ledger, all inside one transaction:
// the assignee must be an active non-superuser, and an existing hit whose
// persisted status is final admits no change at all, not even a rewrite of the
// same values. The guarded update re-checks the status predicate in the UPDATE
// itself so a concurrent closer can't slip between read and write.
func (slf *HitService) Save(hit *models.Hit) error {
	return slf.db.Transaction(func(tx *gorm.DB) error {
		hits := repo.NewHitRepository(tx)

		if hit.AssignedToID != nil {
			assignee, err := repo.NewUserRepository(tx).FindByID(*hit.AssignedToID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ErrInvalidAssignee
				}
				return err
			}
			if assignee.IsSuperuser {
				slf.logger.Warn().Uint("hitId", hit.ID).Msg("Rejected hit assignment to the big boss")
				return apperr.ErrSuperuserAssignment
			}
			if !assignee.IsActive {
				slf.logger.Warn().Uint("hitId", hit.ID).Uint("userId", assignee.ID).
					Msg("Rejected hit assignment to an inactive user")
				return apperr.ErrInactiveAssignee
			}
		}

		if hit.ID != 0 {
			current, err := hits.CurrentStatus(hit.ID)
			if err != nil {
				return err
			}
			if current.Terminal() {
				return apperr.ErrTerminalState
			}
			rows, err := hits.UpdateIfNotTerminal(hit)
			if err != nil {
				return err
			}
			if rows == 0 {
				return apperr.ErrTerminalState
			}
			return nil
		}

		return hits.Create(hit)
	})
}

func (slf *HitService) GetByID(id uint) (*models.Hit, error) {
	hit, err := repo.NewHitRepository(slf.db).FindByID(id)
	if err != nil {
		return nil, err
	}
	return &hit, nil
}

func (slf *HitService) GetAll() ([]models.Hit, error) {
	return repo.NewHitRepository(slf.db).GetAll()
}
