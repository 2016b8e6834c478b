package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"cpusim/config"
	"cpusim/internal/requests"
	"cpusim/internal/schedulers"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp wires the scheduler routes under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ScheduleRoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SchedulePriority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.ScheduleAllAlgorithms(request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := algorithm(request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, bool) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		log.Debugf("rejecting request body: %v", err)
		return nil, false
	}
	return request.WithDefaults(s.config.RoundRobinTimeQuantum, s.config.SwitchCost), true
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, requests.ErrInvalidRequest) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	log.Errorf("schedule failed: %v", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
}

var _ SchedulerHandler = (*SchedulerHandlerImpl)(nil)
