package controller

import (
	"strconv"

	"ai-support-be/internal/pkg/logger"
	"ai-support-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	logger logger.ILogger
}

func NewAdminController(appLogger logger.ILogger) IAdminController {
	return &adminController{logger: appLogger}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "100"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	logs, err := c.logger.GetLogs(ctx.Query("level"), limit, offset)
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
		"message": "Logs retrieved",
		"data":    logs,
	})
}
