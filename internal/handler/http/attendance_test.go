package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/collector"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type fakeAttendanceService struct {
	resp attendance.MultidayAbsenceResponse
	err  error
	got  *attendance.MultidayAbsenceRequest
}

func (f *fakeAttendanceService) MarkMultidayAbsence(ctx context.Context, req attendance.MultidayAbsenceRequest) (attendance.MultidayAbsenceResponse, error) {
	f.got = &req
	if f.err != nil {
		return attendance.MultidayAbsenceResponse{}, f.err
	}
	return f.resp, nil
}

type fakeCollectorService struct{}

func (f *fakeCollectorService) Start(ctx context.Context, adminID string, date dateutil.Date) (collector.StepResponse, error) {
	return collector.StepResponse{}, nil
}

func (f *fakeCollectorService) Status(ctx context.Context, adminID string) (collector.StepResponse, error) {
	return collector.StepResponse{}, nil
}

func (f *fakeCollectorService) Decide(ctx context.Context, adminID string, status attendance.Status) (collector.StepResponse, error) {
	return collector.StepResponse{}, nil
}

func (f *fakeCollectorService) Reason(ctx context.Context, adminID string, text string) (collector.StepResponse, error) {
	return collector.StepResponse{}, nil
}

func (f *fakeCollectorService) Cancel(ctx context.Context, adminID string) error { return nil }

func (f *fakeCollectorService) SweepExpired(ctx context.Context) error { return nil }

func postAbsence(t *testing.T, svc attendance.AttendanceService, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	handler := NewAttendanceHandler(&fakeCollectorService{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/absences", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler.MarkMultidayAbsence(rec, req)

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func TestAttendanceHandler_MarkMultidayAbsence(t *testing.T) {
	svc := &fakeAttendanceService{resp: attendance.MultidayAbsenceResponse{
		EmployeeID: "emp-1",
		StartDate:  "15-07-2025",
		EndDate:    "18-07-2025",
		DaysMarked: 4,
	}}

	rec, envelope := postAbsence(t, svc, `{
		"employee_id": "emp-1",
		"start_date": "15-07-2025",
		"end_date": "18-07-2025",
		"reason": "annual leave"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)

	require.NotNil(t, svc.got)
	assert.Equal(t, dateutil.New(2025, 7, 15), svc.got.StartDate)
	assert.Equal(t, dateutil.New(2025, 7, 18), svc.got.EndDate)
	assert.Equal(t, "annual leave", svc.got.Reason)
}

func TestAttendanceHandler_MarkMultidayAbsence_BadDate(t *testing.T) {
	svc := &fakeAttendanceService{}

	rec, envelope := postAbsence(t, svc, `{
		"employee_id": "emp-1",
		"start_date": "2025-07-15",
		"end_date": "18-07-2025",
		"reason": "annual leave"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
	assert.Nil(t, svc.got, "the service must not be called on a malformed date")
}

func TestAttendanceHandler_MarkMultidayAbsence_UnknownEmployee(t *testing.T) {
	svc := &fakeAttendanceService{err: employee.ErrEmployeeNotFound}

	rec, envelope := postAbsence(t, svc, `{
		"employee_id": "ghost",
		"start_date": "15-07-2025",
		"end_date": "18-07-2025",
		"reason": "annual leave"
	}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}
