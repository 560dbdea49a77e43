package models

import (
	"strings"
	"time"
)

// User is an account in the agency directory. Deletion is logical: the row is
// flagged inactive and timestamped, never removed, so DeletedAt is a plain
// nullable column rather than gorm.DeletedAt (deactivated users must stay
// visible to every query).
type User struct {
	ID                 uint       `gorm:"primaryKey"`
	Username           string     `gorm:"size:150;uniqueIndex;not null;<-:create"`
	Email              string     `gorm:"size:254;uniqueIndex;not null"`
	Hash               string     `gorm:"size:150;index;not null;<-:create"`
	Password           string     `gorm:"size:128;column:password" json:"-"`
	FirstName          string     `gorm:"size:150"`
	LastName           string     `gorm:"size:150"`
	Gender             *string    `gorm:"size:1;index"`
	Birthday           *time.Time
	TermsAndConditions bool       `gorm:"default:false"`
	Country            *string    `gorm:"size:150;index:idx_users_country_state"`
	State              *string    `gorm:"size:150;index:idx_users_country_state"`
	IsSuperuser        bool       `gorm:"default:false"`
	IsActive           bool       `gorm:"default:true"`
	DeletedAt          *time.Time `gorm:"column:deleted_at"`
	JobID              *uint      `gorm:"column:job_id"`
	Job                *Job       `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL"`
	ReportToID         *uint      `gorm:"column:report_to_id"`
	ReportTo           *User      `gorm:"foreignKey:ReportToID;constraint:OnDelete:SET NULL"`
	CreatedAt          time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// GetFullName returns the trimmed "first last" pair, falling back to the
// opaque username when both names are empty.
func (slf *User) GetFullName() string {
	fullName := strings.TrimSpace(slf.FirstName + " " + slf.LastName)
	if fullName == "" {
		return slf.Username
	}
	return fullName
}
