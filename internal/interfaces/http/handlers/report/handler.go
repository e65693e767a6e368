package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/report/usecases"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type Handler struct {
	getReportUC    usecases.GetReportExecutor
	exportReportUC usecases.ExportReportExecutor
	logger         logger.Interface
}

func NewHandler(
	getReportUC usecases.GetReportExecutor,
	exportReportUC usecases.ExportReportExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		getReportUC:    getReportUC,
		exportReportUC: exportReportUC,
		logger:         logger,
	}
}

func reportQuery(c *gin.Context) usecases.ReportQuery {
	return usecases.ReportQuery{
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
	}
}

// GetReport handles GET /reports
//
//	@Summary		Consumption report
//	@Description	Totals and averages for sessions and transfers whose calendar day falls in [start, end]
//	@Tags			reports
//	@Produce		json
//	@Security		Bearer
//	@Param			start	query		string				false	"First day, YYYY-MM-DD (default: first day of the current month)"
//	@Param			end		query		string				false	"Last day, YYYY-MM-DD (default: today)"
//	@Success		200		{object}	utils.APIResponse
//	@Failure		400		{object}	utils.APIResponse
//	@Router			/reports [get]
func (h *Handler) GetReport(c *gin.Context) {
	result, err := h.getReportUC.Execute(c.Request.Context(), reportQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportReport handles GET /reports/export
//
//	@Summary		Export report
//	@Description	The report as an XLSX workbook
//	@Tags			reports
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Security		Bearer
//	@Param			start	query	string	false	"First day, YYYY-MM-DD"
//	@Param			end		query	string	false	"Last day, YYYY-MM-DD"
//	@Success		200		{file}	binary
//	@Router			/reports/export [get]
func (h *Handler) ExportReport(c *gin.Context) {
	result, err := h.exportReportUC.Execute(c.Request.Context(), reportQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("report exported", "filename", result.Filename, "size", len(result.Content))
	utils.AttachmentResponse(c, result.Filename, result.ContentType, result.Content)
}
