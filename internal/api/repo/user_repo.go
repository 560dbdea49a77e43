package repo

import (
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository writes rows only, never associated rows: the loaded Job and
// ReportTo pointers are read-side conveniences and must not be upserted along
// with the user.
type UserRepository struct {
	Db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Db: db}
}

func (slf *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := slf.Db.Preload("Job").Preload("ReportTo").First(&user, id).Error
	return user, err
}

func (slf *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("email = ?", email).First(&user).Error
	return user, err
}

func (slf *UserRepository) Create(user *models.User) error {
	return slf.Db.Omit(clause.Associations).Create(user).Error
}

func (slf *UserRepository) Save(user *models.User) error {
	return slf.Db.Omit(clause.Associations).Save(user).Error
}

func (slf *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// OtherSuperuserExists reports whether any row besides excludeID carries the
// superuser flag. Deactivated rows count: a retired big boss keeps the seat
// until the flag is cleared.
func (slf *UserRepository) OtherSuperuserExists(excludeID uint) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).
		Where("is_superuser = ? AND id <> ?", true, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (slf *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := slf.Db.Preload("Job").Preload("ReportTo").Find(&users).Error
	return users, err
}

func (slf *UserRepository) Count() (int64, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).Count(&count).Error
	return count, err
}
