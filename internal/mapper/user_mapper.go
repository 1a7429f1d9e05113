// Package mapper converts between persistence entities and the DTO
// shapes exposed on the API. Conversions are pure and never fail;
// validation belongs to the service layer.
package mapper

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/models"
)

func UserToDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        idOf(user.ID),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthdate: dto.Date(user.Birthdate),
		Email:     user.Email,
	}
}

func UserToBasicDTO(user *models.User) dto.UserBasicDTO {
	return dto.UserBasicDTO{
		ID:        idOf(user.ID),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func UserToEmailDTO(user *models.User) dto.UserEmailDTO {
	return dto.UserEmailDTO{
		ID:    idOf(user.ID),
		Email: user.Email,
	}
}

// UserToEntity builds an entity from a DTO. Any id the DTO carries is
// kept so the service layer can reject pre-assigned identifiers.
func UserToEntity(d dto.UserDTO) *models.User {
	user := models.NewUser(d.FirstName, d.LastName, datatypes.Date(time.Time(d.Birthdate)), d.Email)
	if d.ID != nil {
		user.ID = *d.ID
	}
	return user
}

func UsersToDTOs(users []models.User) []dto.UserDTO {
	out := make([]dto.UserDTO, len(users))
	for i := range users {
		out[i] = UserToDTO(&users[i])
	}
	return out
}

func UsersToBasicDTOs(users []models.User) []dto.UserBasicDTO {
	out := make([]dto.UserBasicDTO, len(users))
	for i := range users {
		out[i] = UserToBasicDTO(&users[i])
	}
	return out
}

func UsersToEmailDTOs(users []models.User) []dto.UserEmailDTO {
	out := make([]dto.UserEmailDTO, len(users))
	for i := range users {
		out[i] = UserToEmailDTO(&users[i])
	}
	return out
}

// idOf wraps a store-assigned id, keeping zero (unassigned) as nil.
func idOf(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
