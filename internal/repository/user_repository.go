// Package repository wraps GORM access to the users and trainings
// tables. Filter predicates run as WHERE clauses in the store rather
// than in application memory, so result sets never require loading a
// whole table. Single-result lookups return (nil, nil) when nothing
// matches, keeping "absent" distinguishable from a store failure.
package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mkowalczyk/fittracker/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByEmail matches the address exactly. At most one user can match
// because of the unique index on email.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByName returns all users whose first and last name both match
// exactly.
func (r *UserRepository) FindByName(firstName, lastName string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("first_name = ? AND last_name = ?", firstName, lastName).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find users by name: %w", err)
	}
	return users, nil
}

// FindByEmailPartial returns all users whose email contains the
// fragment, case-insensitively.
func (r *UserRepository) FindByEmailPartial(fragment string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.Where("LOWER(email) LIKE ?", pattern).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find users by partial email: %w", err)
	}
	return users, nil
}

// FindOlderThanAge returns users strictly older than the given number
// of years: birthdate + years must fall before today. A user whose
// birthday threshold lands exactly on today is excluded.
func (r *UserRepository) FindOlderThanAge(years int) ([]models.User, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.FindOlderThan(today.AddDate(-years, 0, 0))
}

// FindOlderThan returns users born strictly before the given date. The
// threshold is bound as a plain ISO date string so the comparison is
// date-against-date regardless of driver or session time zone.
func (r *UserRepository) FindOlderThan(date time.Time) ([]models.User, error) {
	var users []models.User
	cutoff := date.Format("2006-01-02")
	err := r.db.Where("birthdate < ?", cutoff).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find users older than %s: %w", cutoff, err)
	}
	return users, nil
}

// Save inserts the user when its ID is zero and updates the existing
// row otherwise. The store assigns the ID on insert.
func (r *UserRepository) Save(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) DeleteByID(id uint) error {
	if err := r.db.Delete(&models.User{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", id, err)
	}
	return count > 0, nil
}
