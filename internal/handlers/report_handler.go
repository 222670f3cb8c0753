package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

const reportSubmittedMessage = "Report submitted successfully"

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport always answers 201 with success=true. When the report could
// not be stored the report key is omitted and the failure is logged and sent
// to Sentry instead of surfacing to the reporter.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	reporterID := identity.ActorID(c)

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("unparseable report body", "error", err, "request_id", requestID(c), "reporter_id", reporterID)
	}

	resp := dto.CreateReportResponse{Success: true, Message: reportSubmittedMessage}
	report, err := h.reportService.CreateReport(c.UserContext(), reporterID, &req)
	if err != nil {
		slog.Error("report creation failed",
			"error", err,
			"action", "create_report",
			"request_id", requestID(c),
			"reporter_id", reporterID,
			"content_type", req.ContentType,
			"content_id", req.ContentID,
		)
		captureException(c, err)
	} else {
		resp.Report = report
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.reportService.ListReports(c.UserContext(), c.Query("status"))
	if err != nil {
		return statusFor(c, err, "Failed to fetch reports")
	}
	return c.JSON(dto.ListReportsResponse{Success: true, Reports: reports})
}

// UpdateReport rejects an unparseable body with 400 and leaves the report
// untouched rather than persisting an empty status.
func (h *ReportHandler) UpdateReport(c *fiber.Ctx) error {
	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.reportService.UpdateStatus(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return statusFor(c, err, "Failed to update report")
	}
	return c.JSON(dto.UpdateReportResponse{Success: true, Report: report})
}

func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.reportService.Stats(c.UserContext())
	if err != nil {
		return statusFor(c, err, "Failed to fetch report stats")
	}
	return c.JSON(dto.ReportStatsResponse{Success: true, Stats: stats})
}

func captureException(c *fiber.Ctx, err error) {
	hub := sentryfiber.GetHubFromContext(c)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
