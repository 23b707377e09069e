package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type HolidayHandler interface {
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

type createHolidayPayload struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CreateHoliday implements HolidayHandler
func (h *holidayHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var payload createHolidayPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := holiday.MarkHolidayRequest{Description: payload.Description}
	if payload.Date != "" {
		date, err := dateutil.Parse(payload.Date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		req.Date = date
	}

	result, err := h.holidayService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday marked", result)
}

// ListHolidays implements HolidayHandler
func (h *holidayHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.holidayService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteHoliday implements HolidayHandler
func (h *holidayHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	date, err := dateutil.Parse(chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.holidayService.Remove(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday unmarked", nil)
}
