package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mkowalczyk/fittracker/internal/dto"
	"github.com/mkowalczyk/fittracker/internal/models"
	"github.com/mkowalczyk/fittracker/internal/repository"
	"github.com/mkowalczyk/fittracker/internal/services"
)

type TrainingHandler struct {
	trainingService *services.TrainingService
	users           *repository.UserRepository
}

func NewTrainingHandler(trainingService *services.TrainingService, users *repository.UserRepository) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService, users: users}
}

// GetAllTrainings handles GET /v1/trainings.
func (h *TrainingHandler) GetAllTrainings(c *fiber.Ctx) error {
	trainings, err := h.trainingService.GetAllTrainings()
	if err != nil {
		return serverError(c, "Failed to fetch trainings", err)
	}
	return c.JSON(trainings)
}

// CreateTraining handles POST /v1/trainings - registers a session for
// the user referenced by userId. Nothing is written when that user does
// not exist.
func (h *TrainingHandler) CreateTraining(c *fiber.Ctx) error {
	var body dto.TrainingCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	user, err := h.resolveUser(c, body.UserID)
	if err != nil || user == nil {
		return err
	}

	created, err := h.trainingService.CreateTraining(body, user)
	if err != nil {
		return serverError(c, "Failed to create training", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetByActivityType handles GET /v1/trainings/activityType?activityType=.
func (h *TrainingHandler) GetByActivityType(c *fiber.Ctx) error {
	activityType, err := models.ParseActivityType(c.Query("activityType"))
	if err != nil {
		return badRequest(c, "Unknown activity type")
	}

	trainings, err := h.trainingService.FindByActivityType(activityType)
	if err != nil {
		return serverError(c, "Failed to fetch trainings", err)
	}
	return c.JSON(trainings)
}

// GetFinishedAfter handles GET /v1/trainings/finished/:afterTime -
// trainings ending strictly after local midnight of the given date.
func (h *TrainingHandler) GetFinishedAfter(c *fiber.Ctx) error {
	after, err := time.ParseInLocation("2006-01-02", c.Params("afterTime"), time.Local)
	if err != nil {
		return badRequest(c, "Invalid date, expected YYYY-MM-DD")
	}

	trainings, err := h.trainingService.FindFinishedAfter(after)
	if err != nil {
		return serverError(c, "Failed to fetch trainings", err)
	}
	return c.JSON(trainings)
}

// GetByUser handles GET /v1/trainings/:userId.
func (h *TrainingHandler) GetByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 0 {
		return badRequest(c, "Invalid user id")
	}

	trainings, err := h.trainingService.FindByUserID(uint(userID))
	if err != nil {
		return serverError(c, "Failed to fetch trainings", err)
	}
	return c.JSON(trainings)
}

// UpdateTraining handles PUT /v1/trainings/:trainingId - full overwrite
// including re-pointing the owning user.
func (h *TrainingHandler) UpdateTraining(c *fiber.Ctx) error {
	trainingID, err := c.ParamsInt("trainingId")
	if err != nil || trainingID < 0 {
		return badRequest(c, "Invalid training id")
	}

	var body dto.TrainingUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	user, err := h.resolveUser(c, body.UserID)
	if err != nil || user == nil {
		return err
	}

	updated, err := h.trainingService.UpdateTraining(uint(trainingID), body, user)
	if err != nil {
		if errors.Is(err, services.ErrTrainingNotFound) {
			return notFound(c, "Training not found")
		}
		return serverError(c, "Failed to update training", err)
	}
	return c.JSON(updated)
}

// resolveUser loads the owning user for a create/update request. When
// it returns a nil user it has already written the error response.
func (h *TrainingHandler) resolveUser(c *fiber.Ctx, userID uint) (*models.User, error) {
	user, err := h.users.FindByID(userID)
	if err != nil {
		return nil, serverError(c, "Failed to resolve user", err)
	}
	if user == nil {
		return nil, notFound(c, "Referenced user not found")
	}
	return user, nil
}
