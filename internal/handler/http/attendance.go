package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/domain/collector"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type AttendanceHandler interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	SessionStatus(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Reason(w http.ResponseWriter, r *http.Request)
	CancelSession(w http.ResponseWriter, r *http.Request)
	MarkMultidayAbsence(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	collectorService  collector.CollectorService
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(collectorService collector.CollectorService, attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		collectorService:  collectorService,
		attendanceService: attendanceService,
	}
}

// adminIDFromContext pulls the authenticated admin out of the JWT. The same
// value keys the collector session.
func adminIDFromContext(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	adminID, ok := claims["sub"].(string)
	if !ok || adminID == "" {
		return "", auth.ErrInvalidToken
	}
	return adminID, nil
}

type startSessionPayload struct {
	Date string `json:"date"`
}

// StartSession implements AttendanceHandler. The date defaults to today when
// the body omits it.
func (h *attendanceHandlerImpl) StartSession(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var payload startSessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	date := dateutil.Today()
	if payload.Date != "" {
		date, err = dateutil.Parse(payload.Date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
	}

	step, err := h.collectorService.Start(r.Context(), adminID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance collection started", step)
}

// SessionStatus implements AttendanceHandler
func (h *attendanceHandlerImpl) SessionStatus(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	step, err := h.collectorService.Status(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, step)
}

type decisionPayload struct {
	Status string `json:"status"`
}

// Decide implements AttendanceHandler
func (h *attendanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var payload decisionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	step, err := h.collectorService.Decide(r.Context(), adminID, attendance.Status(payload.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, step)
}

type reasonPayload struct {
	Reason string `json:"reason"`
}

// Reason implements AttendanceHandler
func (h *attendanceHandlerImpl) Reason(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var payload reasonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	step, err := h.collectorService.Reason(r.Context(), adminID, payload.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, step)
}

// CancelSession implements AttendanceHandler
func (h *attendanceHandlerImpl) CancelSession(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.collectorService.Cancel(r.Context(), adminID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance collection cancelled", nil)
}

type multidayAbsencePayload struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

// MarkMultidayAbsence implements AttendanceHandler
func (h *attendanceHandlerImpl) MarkMultidayAbsence(w http.ResponseWriter, r *http.Request) {
	var payload multidayAbsencePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := attendance.MultidayAbsenceRequest{
		EmployeeID: payload.EmployeeID,
		Reason:     payload.Reason,
	}

	// Missing dates stay zero so the service reports them as required.
	var err error
	if payload.StartDate != "" {
		if req.StartDate, err = dateutil.Parse(payload.StartDate); err != nil {
			response.BadRequest(w, err.Error(), map[string]string{"start_date": payload.StartDate})
			return
		}
	}
	if payload.EndDate != "" {
		if req.EndDate, err = dateutil.Parse(payload.EndDate); err != nil {
			response.BadRequest(w, err.Error(), map[string]string{"end_date": payload.EndDate})
			return
		}
	}

	result, err := h.attendanceService.MarkMultidayAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence recorded", result)
}
