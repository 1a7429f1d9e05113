package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/models"
	"github.com/mkowalczyk/fittracker/internal/repository"
	"github.com/mkowalczyk/fittracker/internal/testutil"
)

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewUserService(repository.NewUserRepository(db)), db
}

func TestCreateUserAssignsID(t *testing.T) {
	svc, _ := newUserService(t)

	created, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateUserRejectsAssignedID(t *testing.T) {
	svc, _ := newUserService(t)

	created, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)

	// Feeding the stored entity back in must fail: ids are
	// store-assigned, never caller-supplied.
	_, err = svc.CreateUser(created)
	assert.ErrorIs(t, err, ErrUserAlreadyPersisted)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(models.NewUser("Other", "Person", date(1980, time.May, 2), "ann@x.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserService(t)

	created, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID))

	found, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDeleteUserValidation(t *testing.T) {
	svc, _ := newUserService(t)

	assert.ErrorIs(t, svc.DeleteUser(0), ErrMissingUserID)
	assert.ErrorIs(t, svc.DeleteUser(12345), ErrUserNotFound)
}

func TestDeleteUserReferencedByTraining(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	trainings := repository.NewTrainingRepository(db)

	created, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)

	training := &models.Training{
		UserID:       created.ID,
		StartTime:    time.Now().Add(-time.Hour),
		EndTime:      time.Now(),
		ActivityType: models.ActivityRunning,
		Distance:     5,
		AverageSpeed: 10,
	}
	require.NoError(t, trainings.Save(training))

	err = svc.DeleteUser(created.ID)
	assert.ErrorIs(t, err, ErrUserHasTrainings)

	// The row survives the failed delete.
	found, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestUpdateUserOverwritesMutableFields(t *testing.T) {
	svc, _ := newUserService(t)

	created, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)

	updated, err := svc.UpdateUser(created.ID, dto.UserDTO{
		FirstName: "Anna",
		LastName:  "Nowak",
		Birthdate: dto.Date(time.Date(1991, time.February, 2, 0, 0, 0, 0, time.Local)),
		Email:     "anna@x.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Anna", updated.FirstName)
	assert.Equal(t, "Nowak", updated.LastName)
	assert.Equal(t, "anna@x.com", updated.Email)
	assert.Equal(t, "1991-02-02", updated.Birthdate.String())
	require.NotNil(t, updated.ID)
	assert.Equal(t, created.ID, *updated.ID)
}

func TestUpdateUserRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)
	bob, err := svc.CreateUser(models.NewUser("Bob", "Lee", date(1985, time.May, 5), "bob@x.com"))
	require.NoError(t, err)

	// The UPDATE path hits the unique index too; stealing another
	// user's address must fail the same way as on create.
	_, err = svc.UpdateUser(bob.ID, dto.UserDTO{
		FirstName: "Bob",
		LastName:  "Lee",
		Birthdate: dto.Date(time.Date(1985, time.May, 5, 0, 0, 0, 0, time.Local)),
		Email:     "ann@x.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Bob keeps his original address after the failed update.
	found, err := svc.GetUserByEmail("bob@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.ID)
	assert.Equal(t, bob.ID, *found.ID)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.UpdateUser(4242, dto.UserDTO{FirstName: "Nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByEmailPartialReturnsEmailDTOs(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "Ann.Graham@x.com"))
	require.NoError(t, err)
	_, err = svc.CreateUser(models.NewUser("Bob", "Lee", date(1990, time.January, 1), "bob@y.com"))
	require.NoError(t, err)

	upper, err := svc.FindUserByEmailPartial("GRA")
	require.NoError(t, err)
	lower, err := svc.FindUserByEmailPartial("gra")
	require.NoError(t, err)

	require.Len(t, upper, 1)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "Ann.Graham@x.com", upper[0].Email)
}

func TestGetUserByEmailIsOptional(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@x.com"))
	require.NoError(t, err)

	found, err := svc.GetUserByEmail("ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := svc.GetUserByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
