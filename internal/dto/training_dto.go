package dto

import (
	"time"

	"github.com/mkowalczyk/fittracker/internal/models"
)

// TrainingDTO is the full projection of a training, with its owning
// user embedded as a UserDTO.
type TrainingDTO struct {
	ID           *uint               `json:"id,omitempty"`
	User         UserDTO             `json:"user"`
	StartTime    time.Time           `json:"startTime"`
	EndTime      time.Time           `json:"endTime"`
	ActivityType models.ActivityType `json:"activityType"`
	Distance     float64             `json:"distance"`
	AverageSpeed float64             `json:"averageSpeed"`
}

// TrainingCreateDTO is the input for registering a training. It carries
// the owning user's identifier; the handler resolves it to a persisted
// user before the service builds the entity.
type TrainingCreateDTO struct {
	UserID       uint                `json:"userId"`
	StartTime    time.Time           `json:"startTime"`
	EndTime      time.Time           `json:"endTime"`
	ActivityType models.ActivityType `json:"activityType"`
	Distance     float64             `json:"distance"`
	AverageSpeed float64             `json:"averageSpeed"`
}

// TrainingUpdateDTO replaces every mutable field of a training,
// including the owning user.
type TrainingUpdateDTO struct {
	UserID       uint                `json:"userId"`
	StartTime    time.Time           `json:"startTime"`
	EndTime      time.Time           `json:"endTime"`
	ActivityType models.ActivityType `json:"activityType"`
	Distance     float64             `json:"distance"`
	AverageSpeed float64             `json:"averageSpeed"`
}
