package service

import (
	"time"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/repo"
	"github.com/SergioDzul/agencyGiuseppi/pkg"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the directory of agency accounts. Every persistence goes
// through Save, which re-runs the organizational invariants inside one
// transaction.
type UserService struct {
	db      *gorm.DB
	logger  zerolog.Logger
	hashGen *pkg.HashGenerator
}

func NewUserService(db *gorm.DB, logger zerolog.Logger) *UserService {
	return &UserService{
		db:      db,
		logger:  logger,
		hashGen: pkg.NewHashGenerator(logger),
	}
}

// Create fills in the surrogate identifiers, hashes the password when one is
// supplied, and delegates to Save.
func (slf *UserService) Create(user *models.User, password string) (*models.User, error) {
	username, err := slf.hashGen.Generate(nil, 0)
	if err != nil {
		return nil, err
	}
	hash, err := slf.hashGen.Generate(pkg.UUIDAlgorithm, 0)
	if err != nil {
		return nil, err
	}
	user.Username = username
	user.Hash = hash
	user.IsActive = true

	if password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slf.logger.Error().Err(err).Msg("Error hashing password")
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := slf.Save(user); err != nil {
		return nil, err
	}
	slf.logger.Info().Uint("userId", user.ID).Msg("User created")
	return user, nil
}

// CreateSuperuser provisions the big boss account.
func (slf *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user := models.User{Email: email, IsSuperuser: true}
	return slf.Create(&user, password)
}

// Save is the validation gate for the directory.
//
// Non-superusers with a supervisor must sit in a job whose designated parent
// is the supervisor's job. A superuser row may only be persisted while no
// other row carries the flag; the partial unique index created by
// models.Migrate enforces the same rule against concurrent transactions.
func (slf *UserService) Save(user *models.User) error {
	return slf.db.Transaction(func(tx *gorm.DB) error {
		users := repo.NewUserRepository(tx)

		if !user.IsSuperuser {
			if user.ReportToID != nil {
				if err := slf.validateChainOfCommand(tx, user); err != nil {
					return err
				}
			}
			return users.Save(user)
		}

		exists, err := users.OtherSuperuserExists(user.ID)
		if err != nil {
			return err
		}
		if exists {
			slf.logger.Warn().Str("email", user.Email).Msg("Rejected second superuser")
			return apperr.ErrSingleSuperuser
		}
		return users.Save(user)
	})
}

func (slf *UserService) validateChainOfCommand(tx *gorm.DB, user *models.User) error {
	if user.JobID == nil {
		// Nobody without a job can report to a supervisor.
		return apperr.ErrChainOfCommand
	}

	supervisor, err := repo.NewUserRepository(tx).FindByID(*user.ReportToID)
	if err != nil {
		return err
	}
	job, err := repo.NewJobRepository(tx).FindByID(*user.JobID)
	if err != nil {
		return err
	}

	if err := job.ValidateChainOfCommand(supervisor.Job); err != nil {
		slf.logger.Warn().
			Uint("userId", user.ID).
			Uint("supervisorId", supervisor.ID).
			Msg("Supervisor outside the chain of command")
		return err
	}
	return nil
}

// Delete deactivates the account and stamps the deletion time. The row is
// never removed; hits the user created survive with created_by nulled by the
// store once the row itself would ever go away.
func (slf *UserService) Delete(user *models.User) error {
	user.IsActive = false
	user.DeletedAt = pkg.ToPtr(time.Now())
	return slf.Save(user)
}

func (slf *UserService) GetByID(id uint) (*models.User, error) {
	user, err := repo.NewUserRepository(slf.db).FindByID(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (slf *UserService) GetAll() ([]models.User, error) {
	return repo.NewUserRepository(slf.db).GetAll()
}
