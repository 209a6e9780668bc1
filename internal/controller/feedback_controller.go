package controller

import (
	"ai-support-be/internal/dto"
	"ai-support-be/internal/pkg/serverutils"
	"ai-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByConversation(ctx *fiber.Ctx) error
}

type feedbackController struct {
	service service.IFeedbackService
}

func NewFeedbackController(service service.IFeedbackService) IFeedbackController {
	return &feedbackController{service: service}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback", serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/conversation/:conversationId", c.ListByConversation)
}

func (c *feedbackController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Feedback recorded",
		"data":    res,
	})
}

func (c *feedbackController) ListByConversation(ctx *fiber.Ctx) error {
	conversationId, err := uuid.Parse(ctx.Params("conversationId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid conversation id")
	}

	res, err := c.service.ListByConversation(ctx.Context(), conversationId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Feedback retrieved",
		"data":    res,
	})
}
