package controller

import (
	"ai-support-be/internal/dto"
	"ai-support-be/internal/pkg/serverutils"
	"ai-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IExperimentController interface {
	RegisterRoutes(r fiber.Router)
	CreateExperiment(ctx *fiber.Ctx) error
	ActivateExperiment(ctx *fiber.Ctx) error
	CompleteExperiment(ctx *fiber.Ctx) error
	ListExperiments(ctx *fiber.Ctx) error
	CreateModelVersion(ctx *fiber.Ctx) error
	ListModelVersions(ctx *fiber.Ctx) error
}

type experimentController struct {
	service service.IExperimentService
}

func NewExperimentController(service service.IExperimentService) IExperimentController {
	return &experimentController{service: service}
}

func (c *experimentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/experiments", serverutils.JwtMiddleware)
	h.Post("/", c.CreateExperiment)
	h.Get("/", c.ListExperiments)
	h.Post("/:id/activate", c.ActivateExperiment)
	h.Post("/:id/complete", c.CompleteExperiment)

	v := r.Group("/model-versions", serverutils.JwtMiddleware)
	v.Post("/", c.CreateModelVersion)
	v.Get("/", c.ListModelVersions)
}

func (c *experimentController) CreateExperiment(ctx *fiber.Ctx) error {
	var req dto.CreateExperimentRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateExperiment(ctx.Context(), &req)
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
		"message": "Experiment created",
		"data":    res,
	})
}

func (c *experimentController) ActivateExperiment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid experiment id")
	}

	res, err := c.service.ActivateExperiment(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Experiment activated",
		"data":    res,
	})
}

func (c *experimentController) CompleteExperiment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid experiment id")
	}

	res, err := c.service.CompleteExperiment(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Experiment completed",
		"data":    res,
	})
}

func (c *experimentController) ListExperiments(ctx *fiber.Ctx) error {
	res, err := c.service.ListExperiments(ctx.Context())
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
		"message": "Experiments retrieved",
		"data":    res,
	})
}

func (c *experimentController) CreateModelVersion(ctx *fiber.Ctx) error {
	var req dto.CreateModelVersionRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateModelVersion(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Model version created",
		"data":    res,
	})
}

func (c *experimentController) ListModelVersions(ctx *fiber.Ctx) error {
	res, err := c.service.ListModelVersions(ctx.Context())
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
		"message": "Model versions retrieved",
		"data":    res,
	})
}
