package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rosterly/attendance-backend-go/internal/domain/report"
	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type ReportHandler interface {
	DailyToday(w http.ResponseWriter, r *http.Request)
	DailyByDate(w http.ResponseWriter, r *http.Request)
	Last7Days(w http.ResponseWriter, r *http.Request)
	Last30Days(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// DailyToday implements ReportHandler
func (h *reportHandlerImpl) DailyToday(w http.ResponseWriter, r *http.Request) {
	h.daily(w, r, dateutil.Today())
}

// DailyByDate implements ReportHandler
func (h *reportHandlerImpl) DailyByDate(w http.ResponseWriter, r *http.Request) {
	date, err := dateutil.Parse(chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.daily(w, r, date)
}

func (h *reportHandlerImpl) daily(w http.ResponseWriter, r *http.Request, date dateutil.Date) {
	result, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Last7Days implements ReportHandler
func (h *reportHandlerImpl) Last7Days(w http.ResponseWriter, r *http.Request) {
	start, end := dateutil.LastNDays(dateutil.Today(), 7)
	h.period(w, r, start, end)
}

// Last30Days implements ReportHandler
func (h *reportHandlerImpl) Last30Days(w http.ResponseWriter, r *http.Request) {
	start, end := dateutil.LastNDays(dateutil.Today(), 30)
	h.period(w, r, start, end)
}

// Monthly implements ReportHandler. ?month= and ?year= select the calendar
// month; both default to the current one.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	today := dateutil.Today()
	month := int(today.Month)
	year := today.Year

	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month, use 1-12", nil)
			return
		}
		month = parsed
	}
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	start, end := dateutil.MonthOf(dateutil.New(year, time.Month(month), 1))
	h.period(w, r, start, end)
}

func (h *reportHandlerImpl) period(w http.ResponseWriter, r *http.Request, start, end dateutil.Date) {
	result, err := h.reportService.Period(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EmployeeReport implements ReportHandler. ?start_date= and ?end_date= bound
// the period; the default is the last 30 days.
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	start, end := dateutil.LastNDays(dateutil.Today(), 30)
	var err error
	if s := r.URL.Query().Get("start_date"); s != "" {
		if start, err = dateutil.Parse(s); err != nil {
			response.BadRequest(w, err.Error(), map[string]string{"start_date": s})
			return
		}
	}
	if e := r.URL.Query().Get("end_date"); e != "" {
		if end, err = dateutil.Parse(e); err != nil {
			response.BadRequest(w, err.Error(), map[string]string{"end_date": e})
			return
		}
	}

	result, err := h.reportService.Employee(r.Context(), id, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
