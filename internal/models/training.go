package models

import (
	"time"
)

// Training is a single session performed by one user. Each training
// belongs to exactly one user; users are looked up by foreign key and
// carry no back-reference collection.
type Training struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"column:user_id;not null;index" json:"-"`
	User         User         `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user"`
	StartTime    time.Time    `gorm:"column:start_time;not null" json:"startTime"`
	EndTime      time.Time    `gorm:"column:end_time;not null" json:"endTime"`
	ActivityType ActivityType `gorm:"column:activity_type;not null" json:"activityType"`
	Distance     float64      `gorm:"column:distance" json:"distance"`
	AverageSpeed float64      `gorm:"column:average_speed" json:"averageSpeed"`
}

func (Training) TableName() string { return "trainings" }
