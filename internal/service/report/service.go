package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/domain/report"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

const (
	topReasonLimit     = 5
	recentAbsenceLimit = 3
	trendWindowDays    = 7
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
	}
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, date dateutil.Date) (report.DailyReport, error) {
	if date.IsZero() {
		return report.DailyReport{}, validator.ValidationErrors{
			{Field: "date", Message: "date is required"},
		}
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	isHoliday, err := s.holidayRepo.Exists(ctx, date)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	records, err := s.attendanceRepo.Query(ctx, attendance.RecordFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to query attendance: %w", err)
	}

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	out := report.DailyReport{
		Date:      date.String(),
		DateLong:  date.Long(),
		Holiday:   isHoliday,
		Employees: make([]report.DailyEmployeeStatus, 0, len(employees)),
	}
	for _, emp := range employees {
		status := report.DailyEmployeeStatus{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Status:     report.DayUnmarked,
		}
		if rec, ok := byEmployee[emp.ID]; ok {
			switch rec.Status {
			case attendance.StatusPresent:
				status.Status = report.DayPresent
			case attendance.StatusAbsent:
				status.Status = report.DayAbsent
				status.Reason = rec.Reason
			}
		}
		switch status.Status {
		case report.DayPresent:
			out.PresentCount++
		case report.DayAbsent:
			out.AbsentCount++
		default:
			out.UnmarkedCount++
		}
		out.Employees = append(out.Employees, status)
	}
	return out, nil
}

type recordKey struct {
	employeeID string
	date       dateutil.Date
}

// Period implements report.ReportService.
func (s *ReportServiceImpl) Period(ctx context.Context, start, end dateutil.Date) (report.PeriodReport, error) {
	if err := validateRange(start, end); err != nil {
		return report.PeriodReport{}, err
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	workingDays, holidays, err := s.workingDays(ctx, start, end)
	if err != nil {
		return report.PeriodReport{}, err
	}

	records, err := s.attendanceRepo.Query(ctx, attendance.RecordFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to query attendance: %w", err)
	}

	byKey := make(map[recordKey]attendance.Record, len(records))
	for _, rec := range records {
		byKey[recordKey{rec.EmployeeID, rec.Date}] = rec
	}

	out := report.PeriodReport{
		StartDate:       start.String(),
		EndDate:         end.String(),
		WorkingDayCount: len(workingDays),
		Employees:       make([]report.EmployeePeriodSummary, 0, len(employees)),
		Holidays:        make([]report.HolidayInfo, 0, len(holidays)),
	}
	for _, h := range holidays {
		out.Holidays = append(out.Holidays, report.HolidayInfo{
			Date:        h.Date.String(),
			Description: h.Description,
		})
	}

	reasonCounts := make(map[string]int)
	for _, emp := range employees {
		summary := report.EmployeePeriodSummary{
			EmployeeID: emp.ID,
			Name:       emp.Name,
		}
		for _, d := range workingDays {
			rec, ok := byKey[recordKey{emp.ID, d}]
			if !ok {
				summary.UnmarkedDays++
				continue
			}
			switch rec.Status {
			case attendance.StatusPresent:
				summary.PresentDays++
			case attendance.StatusAbsent:
				summary.AbsentDays++
				if rec.Reason != nil {
					reasonCounts[strings.ToLower(strings.TrimSpace(*rec.Reason))]++
				}
			}
		}
		summary.AttendanceRate = rate(summary.PresentDays, len(workingDays))
		out.TotalPresent += summary.PresentDays
		out.TotalAbsent += summary.AbsentDays
		out.Employees = append(out.Employees, summary)
	}

	out.TopAbsenceReasons = topReasons(reasonCounts, topReasonLimit)
	return out, nil
}

// Employee implements report.ReportService. Inactive employees stay
// reportable so a removal never erases history.
func (s *ReportServiceImpl) Employee(ctx context.Context, employeeID string, start, end dateutil.Date) (report.EmployeeReport, error) {
	if err := validateRange(start, end); err != nil {
		return report.EmployeeReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	workingDays, _, err := s.workingDays(ctx, start, end)
	if err != nil {
		return report.EmployeeReport{}, err
	}
	workingSet := make(map[dateutil.Date]bool, len(workingDays))
	for _, d := range workingDays {
		workingSet[d] = true
	}

	records, err := s.attendanceRepo.Query(ctx, attendance.RecordFilter{
		EmployeeID: &employeeID,
		StartDate:  &start,
		EndDate:    &end,
	})
	if err != nil {
		return report.EmployeeReport{}, fmt.Errorf("failed to query attendance: %w", err)
	}
	byDate := make(map[dateutil.Date]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	out := report.EmployeeReport{
		EmployeeID:      emp.ID,
		Name:            emp.Name,
		Active:          emp.Active,
		StartDate:       start.String(),
		EndDate:         end.String(),
		WorkingDayCount: len(workingDays),
	}
	for _, d := range workingDays {
		rec, ok := byDate[d]
		if !ok {
			out.UnmarkedDays++
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			out.PresentDays++
		case attendance.StatusAbsent:
			out.AbsentDays++
		}
	}
	out.AttendanceRate = rate(out.PresentDays, len(workingDays))
	out.Trend = trend(start, end, workingSet, byDate)

	out.RecentAbsences, err = s.recentAbsences(ctx, employeeID)
	if err != nil {
		return report.EmployeeReport{}, err
	}
	return out, nil
}

// workingDays expands the range into non-holiday dates and returns the
// holidays that were excluded.
func (s *ReportServiceImpl) workingDays(ctx context.Context, start, end dateutil.Date) ([]dateutil.Date, []holiday.Holiday, error) {
	holidays, err := s.holidayRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidaySet := make(map[dateutil.Date]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date] = true
	}

	var days []dateutil.Date
	for _, d := range dateutil.Range(start, end) {
		if !holidaySet[d] {
			days = append(days, d)
		}
	}
	return days, holidays, nil
}

func (s *ReportServiceImpl) recentAbsences(ctx context.Context, employeeID string) ([]report.AbsenceInfo, error) {
	status := attendance.StatusAbsent
	records, err := s.attendanceRepo.Query(ctx, attendance.RecordFilter{
		EmployeeID: &employeeID,
		Status:     &status,
		SortDesc:   true,
		Limit:      recentAbsenceLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}

	absences := make([]report.AbsenceInfo, 0, len(records))
	for _, rec := range records {
		info := report.AbsenceInfo{Date: rec.Date.String()}
		if rec.Reason != nil {
			info.Reason = *rec.Reason
		}
		absences = append(absences, info)
	}
	return absences, nil
}

// trend renders the last 7 calendar days of the range, oldest first.
// Holidays and unmarked days both render as '-'.
func trend(start, end dateutil.Date, workingSet map[dateutil.Date]bool, byDate map[dateutil.Date]attendance.Record) string {
	windowStart := end.AddDays(-(trendWindowDays - 1))
	if start.After(windowStart) {
		windowStart = start
	}

	var b strings.Builder
	for _, d := range dateutil.Range(windowStart, end) {
		if !workingSet[d] {
			b.WriteByte('-')
			continue
		}
		rec, ok := byDate[d]
		if !ok {
			b.WriteByte('-')
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			b.WriteByte('P')
		case attendance.StatusAbsent:
			b.WriteByte('A')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func topReasons(counts map[string]int, limit int) []report.ReasonCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]report.ReasonCount, 0, len(counts))
	for reason, count := range counts {
		out = append(out, report.ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func rate(present, workingDays int) float64 {
	if workingDays == 0 {
		return 0
	}
	return float64(present) / float64(workingDays) * 100
}

func validateRange(start, end dateutil.Date) error {
	var errs validator.ValidationErrors
	if start.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	}
	if end.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required"})
	}
	if len(errs) == 0 && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be before end date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
