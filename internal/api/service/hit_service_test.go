package service

import (
	"testing"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type hitFixture struct {
	bigBoss *models.User
	manager *models.User
	hitman  *models.User

	userService *UserService
	hitService  *HitService
}

func setupHitFixture(t *testing.T, db *gorm.DB) hitFixture {
	userService := NewUserService(db, testLogger())
	jobService := NewJobService(db, testLogger())

	bigBoss, err := userService.CreateSuperuser(uniqueEmail(), "zxczxc.123")
	require.NoError(t, err)

	managerJob, err := jobService.Create("Manager", nil)
	require.NoError(t, err)
	hitmanJob, err := jobService.Create("Hitman", &managerJob.ID)
	require.NoError(t, err)

	manager, err := userService.Create(&models.User{Email: uniqueEmail(), JobID: &managerJob.ID}, "")
	require.NoError(t, err)
	hitman, err := userService.Create(&models.User{
		Email:      uniqueEmail(),
		JobID:      &hitmanJob.ID,
		ReportToID: &manager.ID,
	}, "")
	require.NoError(t, err)

	return hitFixture{
		bigBoss:     bigBoss,
		manager:     manager,
		hitman:      hitman,
		userService: userService,
		hitService:  NewHitService(db, testLogger()),
	}
}

func TestHit_Create(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	hit, err := fx.hitService.Create("Sergio", "Test", fx.manager)
	require.NoError(t, err, "The hit creation doesn't work")

	assert.NotZero(t, hit.ID)
	assert.Equal(t, models.HitUnassigned, hit.Status)
	require.NotNil(t, hit.CreatedByID)
	assert.Equal(t, fx.manager.ID, *hit.CreatedByID)
	assert.Nil(t, hit.AssignedToID)
}

func TestHit_AssignHappyPath(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	hit, err := fx.hitService.Create("Sergio", "Test", fx.manager)
	require.NoError(t, err)

	require.NoError(t, fx.hitService.Assign(hit, fx.hitman))

	fromDB, err := fx.hitService.GetByID(hit.ID)
	require.NoError(t, err)
	require.NotNil(t, fromDB.AssignedToID)
	assert.Equal(t, fx.hitman.ID, *fromDB.AssignedToID)
	assert.Equal(t, models.HitAssigned, fromDB.Status)
}

func TestHit_Assign_NilUser(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	hit, err := fx.hitService.Create("Sergio", "Test", fx.manager)
	require.NoError(t, err)

	err = fx.hitService.Assign(hit, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidAssignee)

	err = fx.hitService.Assign(hit, &models.User{})
	require.Error(t, err, "An unsaved user is not a valid assignee")
	assert.ErrorIs(t, err, apperr.ErrInvalidAssignee)
}

func TestHit_CannotAssignToBigBoss(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	// Pre-assigned creation goes through the same gate.
	hit := models.Hit{
		TargetName:   "Sergio",
		Description:  "Test",
		Status:       models.HitUnassigned,
		CreatedByID:  &fx.bigBoss.ID,
		AssignedToID: &fx.bigBoss.ID,
	}
	err := fx.hitService.Save(&hit)
	require.Error(t, err, "It's supposed to raise a validation error")
	assert.ErrorIs(t, err, apperr.ErrSuperuserAssignment)
}

func TestHit_CannotAssignToInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	hit, err := fx.hitService.Create("Sergio", "Test", fx.manager)
	require.NoError(t, err)

	// Logic delete, see the user directory tests.
	require.NoError(t, fx.userService.Delete(fx.hitman))

	err = fx.hitService.Assign(hit, fx.hitman)
	require.Error(t, err, "It's supposed to reject an inactive assignee")
	assert.ErrorIs(t, err, apperr.ErrInactiveAssignee)
}

func TestHit_FinalStatusIsImmutable(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	hit, err := fx.hitService.Create("Sergio", "Test", fx.manager)
	require.NoError(t, err)
	require.NoError(t, fx.hitService.Assign(hit, fx.hitman))

	hit.Status = models.HitCompleted
	require.NoError(t, fx.hitService.Save(hit), "Closing an open hit is a legal transition")

	hit.Status = models.HitAssigned
	err = fx.hitService.Save(hit)
	require.Error(t, err, "A hit in a final status can't be changed")
	assert.ErrorIs(t, err, apperr.ErrTerminalState)

	// Even a rewrite of the exact same values is rejected.
	hit.Status = models.HitCompleted
	err = fx.hitService.Save(hit)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrTerminalState)

	fromDB, err := fx.hitService.GetByID(hit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HitCompleted, fromDB.Status)
}

func TestHit_FailedIsAlsoFinal(t *testing.T) {
	db := setupTestDB(t)
	fx := setupHitFixture(t, db)

	hit, err := fx.hitService.Create("Sergio", "Test", fx.manager)
	require.NoError(t, err)
	require.NoError(t, fx.hitService.Assign(hit, fx.hitman))

	hit.Status = models.HitFailed
	require.NoError(t, fx.hitService.Save(hit))

	hit.Description = "new intel"
	err = fx.hitService.Save(hit)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrTerminalState)
}
