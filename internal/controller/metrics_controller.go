package controller

import (
	"echoparse-be/internal/pkg/serverutils"
	"echoparse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMetricsController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	LiveRatings(ctx *fiber.Ctx) error
}

type metricsController struct {
	metricsService service.IMetricsService
	ratingService  service.IRatingService
}

func NewMetricsController(metricsService service.IMetricsService, ratingService service.IRatingService) IMetricsController {
	return &metricsController{
		metricsService: metricsService,
		ratingService:  ratingService,
	}
}

func (c *metricsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/metrics/v1")
	h.Get("", c.Dashboard)
	h.Get("live-ratings", c.LiveRatings)
}

func (c *metricsController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.metricsService.GetDashboardMetrics(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch dashboard metrics", res))
}

func (c *metricsController) LiveRatings(ctx *fiber.Ctx) error {
	res, err := c.ratingService.GetLiveRatings(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch live ratings", res))
}
