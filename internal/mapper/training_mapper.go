package mapper

import (
	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/models"
)

func TrainingToDTO(training *models.Training) dto.TrainingDTO {
	return dto.TrainingDTO{
		ID:           idOf(training.ID),
		User:         UserToDTO(&training.User),
		StartTime:    training.StartTime,
		EndTime:      training.EndTime,
		ActivityType: training.ActivityType,
		Distance:     training.Distance,
		AverageSpeed: training.AverageSpeed,
	}
}

// TrainingFromCreateDTO builds a new entity from create input and the
// already-resolved owning user.
func TrainingFromCreateDTO(d dto.TrainingCreateDTO, user *models.User) *models.Training {
	return &models.Training{
		UserID:       user.ID,
		User:         *user,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		ActivityType: d.ActivityType,
		Distance:     d.Distance,
		AverageSpeed: d.AverageSpeed,
	}
}

func TrainingsToDTOs(trainings []models.Training) []dto.TrainingDTO {
	out := make([]dto.TrainingDTO, len(trainings))
	for i := range trainings {
		out[i] = TrainingToDTO(&trainings[i])
	}
	return out
}
