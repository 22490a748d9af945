package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	sim "github.com/cfs-sim/cfs-sim/sim"
	"github.com/cfs-sim/cfs-sim/sim/workload"
)

// SchedulerHandler exposes scheduling simulations over HTTP.
type SchedulerHandler struct{}

// Register mounts the v1 routes on the app.
func Register(app *fiber.App) {
	h := &SchedulerHandler{}
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/schedule", h.Schedule)
}

// Schedule runs one simulation from the posted population and returns the
// execution log plus summary statistics.
func (h *SchedulerHandler) Schedule(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if len(req.Processes) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "processes must not be empty",
		})
	}

	cfg := sim.DefaultConfig()
	if req.Config != nil {
		cfg = sim.Config{
			Nice0Load:    req.Config.Nice0Load,
			CPUTimeSlice: req.Config.CPUTimeSlice,
			IOWaitTime:   req.Config.IOWaitTime,
		}
	}

	specs := make([]workload.Spec, 0, len(req.Processes))
	for _, p := range req.Processes {
		nature, err := sim.ParseNature(p.Nature)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		specs = append(specs, workload.Spec{
			PID:      p.PID,
			Priority: p.Priority,
			Burst:    p.Burst,
			Nature:   nature,
		})
	}

	arena, handles, err := workload.Build(specs)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s, err := sim.NewScheduler(cfg, sim.NewVirtualClock(), arena)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	s.Seed(handles)
	entries := s.Run()
	m := s.Metrics()

	logrus.Infof("scheduled %d processes over HTTP: %d slices", len(specs), m.TotalSlices)

	resp := ScheduleResponse{
		Entries: make([]LogEntryResponse, 0, len(entries)),
		Summary: SummaryResponse{
			CompletedProcesses: m.CompletedProcesses,
			TotalSlices:        m.TotalSlices,
			SkippedSeeds:       m.SkippedSeeds,
			Makespan:           m.Makespan,
			FinalVRuntimes:     m.FinalVRuntimes,
			CompletionOrder:    m.CompletionOrder,
		},
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, LogEntryResponse{
			PID:      e.PID,
			Start:    e.StartTime,
			End:      e.EndTime,
			Duration: e.Duration(),
		})
	}
	return ctx.JSON(resp)
}
