package service

import (
	"testing"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_Create(t *testing.T) {
	db := setupTestDB(t)
	jobService := NewJobService(db, testLogger())

	job, err := jobService.Create("General Manager", nil)
	require.NoError(t, err, "Failed to create a root job")
	assert.NotZero(t, job.ID)
	assert.Nil(t, job.ReportToID)
}

func TestJob_OrganizationTree(t *testing.T) {
	db := setupTestDB(t)
	jobService := NewJobService(db, testLogger())

	generalManager, err := jobService.Create("General Manager", nil)
	require.NoError(t, err)
	itManager, err := jobService.Create("IT Manager", &generalManager.ID)
	require.NoError(t, err)
	sellerManager, err := jobService.Create("Seller Manager", &generalManager.ID)
	require.NoError(t, err)
	frontEndDev, err := jobService.Create("Front-end Developer", &itManager.ID)
	require.NoError(t, err)

	fromDB, err := jobService.GetByID(frontEndDev.ID)
	require.NoError(t, err)
	require.NotNil(t, fromDB.ReportTo)
	assert.Equal(t, itManager.ID, fromDB.ReportTo.ID)

	assert.NoError(t, jobService.ValidateChainOfCommand(frontEndDev.ID, itManager.ID))

	err = jobService.ValidateChainOfCommand(frontEndDev.ID, sellerManager.ID)
	require.Error(t, err, "A job outside the chain must be rejected")
	assert.ErrorIs(t, err, apperr.ErrChainOfCommand)
}

func TestJob_ValidateChainOfCommand_RootJob(t *testing.T) {
	db := setupTestDB(t)
	jobService := NewJobService(db, testLogger())

	root, err := jobService.Create("General Manager", nil)
	require.NoError(t, err)
	other, err := jobService.Create("IT Manager", &root.ID)
	require.NoError(t, err)

	// A root job has no designated parent: the check can never pass.
	err = jobService.ValidateChainOfCommand(root.ID, other.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrChainOfCommand)
}

func TestJob_CycleRejected(t *testing.T) {
	db := setupTestDB(t)
	jobService := NewJobService(db, testLogger())

	jobA, err := jobService.Create("A", nil)
	require.NoError(t, err)
	jobB, err := jobService.Create("B", &jobA.ID)
	require.NoError(t, err)

	jobA.ReportToID = &jobB.ID
	err = jobService.Save(jobA)
	require.Error(t, err, "A reporting loop must be rejected")
	assert.ErrorIs(t, err, apperr.ErrChainOfCommand)
}

func TestJob_SelfReportRejected(t *testing.T) {
	db := setupTestDB(t)
	jobService := NewJobService(db, testLogger())

	job, err := jobService.Create("A", nil)
	require.NoError(t, err)

	job.ReportToID = &job.ID
	err = jobService.Save(job)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrChainOfCommand)
}

func TestJob_Delete_CascadesToNull(t *testing.T) {
	db := setupTestDB(t)
	jobService := NewJobService(db, testLogger())
	userService := NewUserService(db, testLogger())

	parent, err := jobService.Create("Manager", nil)
	require.NoError(t, err)
	child, err := jobService.Create("Hitman", &parent.ID)
	require.NoError(t, err)
	member, err := userService.Create(&models.User{Email: uniqueEmail(), JobID: &parent.ID}, "")
	require.NoError(t, err)

	require.NoError(t, jobService.Delete(parent.ID))

	childFromDB, err := jobService.GetByID(child.ID)
	require.NoError(t, err, "Children must survive the parent's deletion")
	assert.Nil(t, childFromDB.ReportToID)

	memberFromDB, err := userService.GetByID(member.ID)
	require.NoError(t, err, "Members must survive their job's deletion")
	assert.Nil(t, memberFromDB.JobID)
	assert.True(t, memberFromDB.IsActive)
}
