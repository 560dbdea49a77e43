package models

import "gorm.io/gorm"

// Migrate creates the schema plus the partial unique index that makes the
// single-superuser rule hold at the store level. The in-transaction check in
// the user service produces the typed error; this index is what closes the
// race between concurrent writers (works on both Postgres and SQLite).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Job{}, &User{}, &Hit{}); err != nil {
		return err
	}
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_superuser ON users (is_superuser) WHERE is_superuser",
	).Error
}
