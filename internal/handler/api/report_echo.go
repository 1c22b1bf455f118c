package api

import (
	"AdsPull/internal/domain/models"
	"AdsPull/internal/usecase"
	xhttp "AdsPull/pkg/http"
	xlogger "AdsPull/pkg/logger"
	"AdsPull/pkg/util"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the blended ROAS report over HTTP.
type ReportHandler struct {
	logger *xlogger.Logger
	uc     *usecase.ReportUseCase
}

func NewReportHandler(logger *xlogger.Logger, uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{logger: logger, uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/report", h.Report)
	g.GET("/channels", h.Channels)
}

// Report handles GET /api/report?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ReportHandler) Report(c echo.Context) error {
	req := &models.ReportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	from, _ := util.ParseDay(req.From)
	to, _ := util.ParseDay(req.To)
	if to.Before(from) {
		return xhttp.BadRequestResponse(c, []*xhttp.AppError{
			xhttp.BadRequestErrorf("from %s must not be after to %s", req.From, req.To),
		})
	}

	res, err := h.uc.GetReport(c.Request().Context(), usecase.ReportParams{
		From:    from,
		To:      to,
		Refresh: req.Refresh,
	})
	if err != nil {
		h.logger.Error("report usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("report fetch failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// Channels handles GET /api/channels.
func (h *ReportHandler) Channels(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.ChannelsResponse{Enabled: h.uc.EnabledChannels()})
}
