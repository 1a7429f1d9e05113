package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/mapper"
	"github.com/mkowalczyk/fittracker/internal/models"
	"github.com/mkowalczyk/fittracker/internal/repository"
)

var (
	ErrUserAlreadyPersisted = errors.New("user already has a store-assigned id")
	ErrMissingUserID        = errors.New("user id is required")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email is already in use")
	ErrUserHasTrainings     = errors.New("user is still referenced by trainings")
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUser persists a new user. Identifier assignment is exclusive to
// the store: input that already carries an id is rejected.
func (s *UserService) CreateUser(user *models.User) (*models.User, error) {
	slog.Info("creating user", "email", user.Email)
	if user.ID != 0 {
		return nil, ErrUserAlreadyPersisted
	}
	if err := s.users.Save(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user row. Deleting a user that trainings still
// reference violates the foreign key and is reported as
// ErrUserHasTrainings instead of leaking the raw store error.
func (s *UserService) DeleteUser(id uint) error {
	slog.Info("deleting user", "user_id", id)
	if id == 0 {
		return ErrMissingUserID
	}
	exists, err := s.users.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	if err := s.users.DeleteByID(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUserHasTrainings
		}
		return err
	}
	return nil
}

// UpdateUser overwrites every mutable field of an existing user from
// the DTO and persists the result.
func (s *UserService) UpdateUser(id uint, d dto.UserDTO) (dto.UserDTO, error) {
	slog.Info("updating user", "user_id", id)
	user, err := s.users.FindByID(id)
	if err != nil {
		return dto.UserDTO{}, err
	}
	if user == nil {
		return dto.UserDTO{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}

	user.FirstName = d.FirstName
	user.LastName = d.LastName
	user.Birthdate = datatypes.Date(time.Time(d.Birthdate))
	user.Email = d.Email

	if err := s.users.Save(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.UserDTO{}, ErrEmailTaken
		}
		return dto.UserDTO{}, err
	}
	return mapper.UserToDTO(user), nil
}

// FindUserByEmailPartial returns email projections of every user whose
// address contains the fragment, case-insensitively.
func (s *UserService) FindUserByEmailPartial(fragment string) ([]dto.UserEmailDTO, error) {
	users, err := s.users.FindByEmailPartial(fragment)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToEmailDTOs(users), nil
}

func (s *UserService) GetUsersOlderThanAge(years int) ([]dto.UserDTO, error) {
	users, err := s.users.FindOlderThanAge(years)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDTOs(users), nil
}

func (s *UserService) GetUsersOlderThan(date time.Time) ([]dto.UserDTO, error) {
	users, err := s.users.FindOlderThan(date)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDTOs(users), nil
}

func (s *UserService) GetUsersByName(firstName, lastName string) ([]dto.UserDTO, error) {
	users, err := s.users.FindByName(firstName, lastName)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDTOs(users), nil
}

func (s *UserService) FindAllUsers() ([]dto.UserDTO, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDTOs(users), nil
}

func (s *UserService) FindAllUsersBasic() ([]dto.UserBasicDTO, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	return mapper.UsersToBasicDTOs(users), nil
}

// GetUserByID returns nil without an error when no such user exists.
func (s *UserService) GetUserByID(id uint) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	d := mapper.UserToDTO(user)
	return &d, nil
}

func (s *UserService) GetUserByEmail(email string) (*dto.UserDTO, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil || user == nil {
		return nil, err
	}
	d := mapper.UserToDTO(user)
	return &d, nil
}
