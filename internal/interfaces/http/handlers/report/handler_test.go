package report

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"preparos/internal/application/report/usecases"
	"preparos/internal/interfaces/http/handlers/testutil"
	"preparos/internal/shared/errors"
)

type mockGetReportUC struct {
	result *usecases.ReportDTO
	err    error
	got    usecases.ReportQuery
}

func (m *mockGetReportUC) Execute(_ context.Context, query usecases.ReportQuery) (*usecases.ReportDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockExportReportUC struct {
	result *usecases.ExportResult
	err    error
}

func (m *mockExportReportUC) Execute(_ context.Context, _ usecases.ReportQuery) (*usecases.ExportResult, error) {
	return m.result, m.err
}

func TestHandler_GetReport(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockGetReportUC
		wantStatus int
	}{
		{name: "success", uc: &mockGetReportUC{result: &usecases.ReportDTO{SessionCount: 3}}, wantStatus: http.StatusOK},
		{name: "inverted range", uc: &mockGetReportUC{err: errors.NewValidationError("start date must not be after end date")}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(tt.uc, nil, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/reports", nil)
			testutil.SetQueryParams(c, map[string]string{"start": "2024-01-01", "end": "2024-01-31"})

			handler.GetReport(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "2024-01-01", tt.uc.got.StartDate)
			assert.Equal(t, "2024-01-31", tt.uc.got.EndDate)
		})
	}
}

func TestHandler_ExportReport(t *testing.T) {
	handler := NewHandler(nil, &mockExportReportUC{result: &usecases.ExportResult{
		Filename:    "relatorio_2024-01-01_2024-01-31.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK"),
	}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/reports/export", nil)

	handler.ExportReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio_2024-01-01_2024-01-31.xlsx")
	assert.Equal(t, "PK", w.Body.String())
}
