package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/mapper"
	"github.com/mkowalczyk/fittracker/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetAllUsers handles GET /v1/users - lists every user as a full DTO.
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.FindAllUsers()
	if err != nil {
		return serverError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// CreateUser handles POST /v1/users - persists a new user. Input that
// already carries an id is rejected, identifiers are store-assigned.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var body dto.UserDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	created, err := h.userService.CreateUser(mapper.UserToEntity(body))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyPersisted):
			return badRequest(c, "User already has an assigned id")
		case errors.Is(err, services.ErrEmailTaken):
			return conflict(c, "A user with this email already exists")
		}
		return serverError(c, "Failed to create user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(mapper.UserToDTO(created))
}

// GetBasicUsers handles GET /v1/users/simple - lists users without
// contact details.
func (h *UserHandler) GetBasicUsers(c *fiber.Ctx) error {
	users, err := h.userService.FindAllUsersBasic()
	if err != nil {
		return serverError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// DeleteUser handles DELETE /v1/users/:id.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return badRequest(c, "Invalid user id")
	}

	if err := h.userService.DeleteUser(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingUserID):
			return badRequest(c, "User id is required")
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, services.ErrUserHasTrainings):
			return conflict(c, "User is still referenced by trainings")
		}
		return serverError(c, "Failed to delete user", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetUsersByName handles GET /v1/users/byName?firstName=&lastName= -
// exact match on both name parts.
func (h *UserHandler) GetUsersByName(c *fiber.Ctx) error {
	users, err := h.userService.GetUsersByName(c.Query("firstName"), c.Query("lastName"))
	if err != nil {
		return serverError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// GetUserByID handles GET /v1/users/:id - responds 200 with a JSON
// null body when no user matches, absence is not an error here.
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		return serverError(c, "Failed to fetch user", err)
	}
	return c.JSON(user)
}

// GetUsersByEmail handles GET /v1/users/email?email= - case-insensitive
// substring match returning email projections.
func (h *UserHandler) GetUsersByEmail(c *fiber.Ctx) error {
	users, err := h.userService.FindUserByEmailPartial(c.Query("email"))
	if err != nil {
		return serverError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// GetUsersOlderThanAge handles GET /v1/users/olderThanAge/:age.
func (h *UserHandler) GetUsersOlderThanAge(c *fiber.Ctx) error {
	age, err := c.ParamsInt("age")
	if err != nil || age < 0 {
		return badRequest(c, "Invalid age")
	}

	users, err := h.userService.GetUsersOlderThanAge(age)
	if err != nil {
		return serverError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// GetUsersOlderThan handles GET /v1/users/older/:time - users born
// strictly before the given ISO date.
func (h *UserHandler) GetUsersOlderThan(c *fiber.Ctx) error {
	date, err := time.ParseInLocation("2006-01-02", c.Params("time"), time.Local)
	if err != nil {
		return badRequest(c, "Invalid date, expected YYYY-MM-DD")
	}

	users, err := h.userService.GetUsersOlderThan(date)
	if err != nil {
		return serverError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// UpdateUser handles PUT /v1/users/:user_id - full overwrite of the
// mutable fields.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("user_id")
	if err != nil || id < 0 {
		return badRequest(c, "Invalid user id")
	}

	var body dto.UserDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.userService.UpdateUser(uint(id), body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, services.ErrEmailTaken):
			return conflict(c, "A user with this email already exists")
		}
		return serverError(c, "Failed to update user", err)
	}

	return c.JSON(updated)
}
