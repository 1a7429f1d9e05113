package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/mapper"
	"github.com/mkowalczyk/fittracker/internal/models"
	"github.com/mkowalczyk/fittracker/internal/repository"
)

var ErrTrainingNotFound = errors.New("training not found")

type TrainingService struct {
	trainings *repository.TrainingRepository
}

func NewTrainingService(trainings *repository.TrainingRepository) *TrainingService {
	return &TrainingService{trainings: trainings}
}

// CreateTraining registers a session for an already-resolved user and
// returns the stored projection.
func (s *TrainingService) CreateTraining(d dto.TrainingCreateDTO, user *models.User) (dto.TrainingDTO, error) {
	slog.Info("creating training", "user_id", user.ID, "activity", d.ActivityType.String())
	training := mapper.TrainingFromCreateDTO(d, user)
	if err := s.trainings.Save(training); err != nil {
		return dto.TrainingDTO{}, err
	}
	return mapper.TrainingToDTO(training), nil
}

// UpdateTraining overwrites every field of an existing training,
// including the owning user.
func (s *TrainingService) UpdateTraining(id uint, d dto.TrainingUpdateDTO, user *models.User) (dto.TrainingDTO, error) {
	slog.Info("updating training", "training_id", id)
	training, err := s.trainings.FindByID(id)
	if err != nil {
		return dto.TrainingDTO{}, err
	}
	if training == nil {
		return dto.TrainingDTO{}, fmt.Errorf("%w: id %d", ErrTrainingNotFound, id)
	}

	training.UserID = user.ID
	training.User = *user
	training.StartTime = d.StartTime
	training.EndTime = d.EndTime
	training.ActivityType = d.ActivityType
	training.Distance = d.Distance
	training.AverageSpeed = d.AverageSpeed

	if err := s.trainings.Save(training); err != nil {
		return dto.TrainingDTO{}, err
	}
	return mapper.TrainingToDTO(training), nil
}

func (s *TrainingService) FindByActivityType(activityType models.ActivityType) ([]dto.TrainingDTO, error) {
	trainings, err := s.trainings.FindAllByActivityType(activityType)
	if err != nil {
		return nil, err
	}
	return mapper.TrainingsToDTOs(trainings), nil
}

// FindFinishedAfter returns trainings whose end time is strictly after
// local midnight of the given calendar date.
func (s *TrainingService) FindFinishedAfter(after time.Time) ([]dto.TrainingDTO, error) {
	startOfDay := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, time.Local)
	trainings, err := s.trainings.FindAllByEndTimeAfter(startOfDay)
	if err != nil {
		return nil, err
	}
	return mapper.TrainingsToDTOs(trainings), nil
}

func (s *TrainingService) FindByUserID(userID uint) ([]dto.TrainingDTO, error) {
	trainings, err := s.trainings.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return mapper.TrainingsToDTOs(trainings), nil
}

// GetTraining returns nil without an error when no such training
// exists.
func (s *TrainingService) GetTraining(id uint) (*dto.TrainingDTO, error) {
	training, err := s.trainings.FindByID(id)
	if err != nil || training == nil {
		return nil, err
	}
	d := mapper.TrainingToDTO(training)
	return &d, nil
}

func (s *TrainingService) GetAllTrainings() ([]dto.TrainingDTO, error) {
	trainings, err := s.trainings.FindAll()
	if err != nil {
		return nil, err
	}
	return mapper.TrainingsToDTOs(trainings), nil
}
