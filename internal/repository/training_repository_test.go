package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkowalczyk/fittracker/internal/models"
	"github.com/mkowalczyk/fittracker/internal/testutil"
)

func seedTrainings(t *testing.T, db *gorm.DB) (owner *models.User, morning, evening *models.Training) {
	t.Helper()
	users := NewUserRepository(db)
	repo := NewTrainingRepository(db)

	owner = models.NewUser("Ann", "Lee", date(1990, time.January, 1), "ann@example.com")
	require.NoError(t, users.Save(owner))

	morning = &models.Training{
		UserID:       owner.ID,
		StartTime:    time.Date(2024, time.January, 1, 8, 0, 0, 0, time.Local),
		EndTime:      time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local),
		ActivityType: models.ActivityRunning,
		Distance:     10.5,
		AverageSpeed: 10.5,
	}
	evening = &models.Training{
		UserID:       owner.ID,
		StartTime:    time.Date(2024, time.March, 5, 18, 0, 0, 0, time.Local),
		EndTime:      time.Date(2024, time.March, 5, 19, 30, 0, 0, time.Local),
		ActivityType: models.ActivityCycling,
		Distance:     30,
		AverageSpeed: 20,
	}
	require.NoError(t, repo.Save(morning))
	require.NoError(t, repo.Save(evening))
	return owner, morning, evening
}

func TestTrainingRepositoryFindByIDPreloadsUser(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTrainingRepository(db)
	owner, morning, _ := seedTrainings(t, db)

	found, err := repo.FindByID(morning.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, owner.ID, found.User.ID)
	assert.Equal(t, "ann@example.com", found.User.Email)

	missing, err := repo.FindByID(99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTrainingRepositoryFindAllByActivityType(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTrainingRepository(db)
	seedTrainings(t, db)

	runs, err := repo.FindAllByActivityType(models.ActivityRunning)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, models.ActivityRunning, runs[0].ActivityType)

	swims, err := repo.FindAllByActivityType(models.ActivitySwimming)
	require.NoError(t, err)
	assert.Empty(t, swims)
}

func TestTrainingRepositoryFindAllByEndTimeAfterIsStrict(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTrainingRepository(db)
	_, morning, evening := seedTrainings(t, db)

	// Exactly the morning end time: strictly-after excludes it.
	found, err := repo.FindAllByEndTimeAfter(morning.EndTime)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, evening.ID, found[0].ID)

	// One second earlier includes it.
	found, err = repo.FindAllByEndTimeAfter(morning.EndTime.Add(-time.Second))
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestTrainingRepositoryFindByUserID(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	repo := NewTrainingRepository(db)
	owner, _, _ := seedTrainings(t, db)

	other := models.NewUser("Bob", "Lee", date(1985, time.May, 5), "bob@example.com")
	require.NoError(t, users.Save(other))

	mine, err := repo.FindByUserID(owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.FindByUserID(other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestTrainingRepositorySaveUpdatesInPlace(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTrainingRepository(db)
	_, morning, _ := seedTrainings(t, db)

	morning.Distance = 12.0
	require.NoError(t, repo.Save(morning))

	found, err := repo.FindByID(morning.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 12.0, found.Distance)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
