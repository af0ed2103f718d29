package handler

import (
	"bytes"
	"errors"
	"time"

	"github.com/fadilmartias/interview-report/internal/dto"
	"github.com/fadilmartias/interview-report/internal/middleware"
	"github.com/fadilmartias/interview-report/internal/usecase"
	"github.com/fadilmartias/interview-report/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	defaultSimilar  = 5
)

type ReportHandler struct {
	uc     usecase.ReportUsecaseInterface
	logger *zap.Logger
}

func NewReportHandler(uc usecase.ReportUsecaseInterface, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{uc: uc, logger: logger}
}

func (h *ReportHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/generate-report", middleware.RateLimiter(10, 1*time.Minute), h.Generate)
	app.Get("/reports", h.ListReports)
	app.Get("/reports/:id", h.GetReport)
	app.Get("/reports/:id/similar", h.SimilarReports)
}

func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	req, err := dto.ParseReportRequest(c.Body())
	if err != nil {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: ve.Message,
			})
		}
		return h.internalError(c, err)
	}

	result, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		return h.internalError(c, err)
	}

	c.Attachment(result.Filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	data := result.Document.Data
	return c.Status(fiber.StatusOK).SendStream(bytes.NewReader(data), len(data))
}

func (h *ReportHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error("report generation failed", zap.String("path", c.Path()), zap.Error(err))
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusInternalServerError,
		Message: err.Error(),
	})
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	logs, pagination, err := h.uc.ListLogs(c.UserContext(), page, pageSize)
	if err != nil {
		return h.logError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get reports",
		Data:       logs,
		Pagination: pagination,
	})
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid report id",
		}, err)
	}

	log, err := h.uc.GetLog(c.UserContext(), id)
	if err != nil {
		return h.logError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get report",
		Data:    log,
	})
}

func (h *ReportHandler) SimilarReports(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid report id",
		}, err)
	}

	logs, err := h.uc.SimilarLogs(c.UserContext(), id, c.QueryInt("limit", defaultSimilar))
	if err != nil {
		return h.logError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get similar reports",
		Data:    logs,
	})
}

func (h *ReportHandler) logError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrReportLogDisabled):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusServiceUnavailable,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrReportLogNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	}
	h.logger.Error("report log query failed", zap.String("path", c.Path()), zap.Error(err))
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "failed to read report log",
	}, err)
}
