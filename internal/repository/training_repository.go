package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mkowalczyk/fittracker/internal/models"
)

type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) FindByID(id uint) (*models.Training, error) {
	var training models.Training
	err := r.db.Preload("User").First(&training, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find training %d: %w", id, err)
	}
	return &training, nil
}

func (r *TrainingRepository) FindAll() ([]models.Training, error) {
	var trainings []models.Training
	if err := r.db.Preload("User").Find(&trainings).Error; err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	return trainings, nil
}

func (r *TrainingRepository) FindAllByActivityType(activityType models.ActivityType) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Preload("User").Where("activity_type = ?", activityType).Find(&trainings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trainings by activity type: %w", err)
	}
	return trainings, nil
}

// FindAllByEndTimeAfter returns trainings whose end time falls strictly
// after the given instant.
func (r *TrainingRepository) FindAllByEndTimeAfter(after time.Time) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Preload("User").Where("end_time > ?", after).Find(&trainings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trainings finished after %s: %w", after, err)
	}
	return trainings, nil
}

func (r *TrainingRepository) FindByUserID(userID uint) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Preload("User").Where("user_id = ?", userID).Find(&trainings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trainings for user %d: %w", userID, err)
	}
	return trainings, nil
}

func (r *TrainingRepository) Save(training *models.Training) error {
	if err := r.db.Save(training).Error; err != nil {
		return fmt.Errorf("failed to save training: %w", err)
	}
	return nil
}
