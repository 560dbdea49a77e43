package models

import "time"

// HitStatus values are numeric for query performance.
type HitStatus int16

const (
	HitUnassigned HitStatus = 1
	HitAssigned   HitStatus = 2
	HitFailed     HitStatus = 3
	HitCompleted  HitStatus = 4
)

// Terminal reports whether the status ends the hit lifecycle. No transition
// leaves a terminal status.
func (slf HitStatus) Terminal() bool {
	return slf == HitFailed || slf == HitCompleted
}

func (slf HitStatus) String() string {
	switch slf {
	case HitUnassigned:
		return "unassigned"
	case HitAssigned:
		return "assigned"
	case HitFailed:
		return "failed"
	case HitCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Hit is a unit of work placed on a target. The per-relation delete rules
// differ on purpose: assigned_to cascades with its user, created_by is only
// nulled, so closed hits survive the departure of their author.
type Hit struct {
	ID           uint      `gorm:"primaryKey"`
	AssignedToID *uint     `gorm:"column:assigned_to_id;index"`
	AssignedTo   *User     `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE"`
	TargetName   string    `gorm:"size:150;not null"`
	Description  string    `gorm:"size:250"`
	Status       HitStatus `gorm:"default:1;index"`
	CreatedByID  *uint     `gorm:"column:created_by_id;index"`
	CreatedBy    *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;index:,sort:desc"`
}

func (Hit) TableName() string {
	return "hits"
}
