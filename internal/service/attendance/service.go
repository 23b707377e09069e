package attendance

import (
	"context"
	"fmt"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	// skipHolidays controls whether multiday ranges write records on dates
	// marked in the holiday calendar (MULTIDAY_SKIP_HOLIDAYS).
	skipHolidays bool
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	skipHolidays bool,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		skipHolidays:   skipHolidays,
	}
}

// MarkMultidayAbsence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkMultidayAbsence(ctx context.Context, req attendance.MultidayAbsenceRequest) (attendance.MultidayAbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MultidayAbsenceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MultidayAbsenceResponse{}, err
	}
	if !emp.Active {
		return attendance.MultidayAbsenceResponse{}, employee.ErrEmployeeInactive
	}

	holidayDates := make(map[dateutil.Date]bool)
	if s.skipHolidays {
		holidays, err := s.holidayRepo.ListRange(ctx, req.StartDate, req.EndDate)
		if err != nil {
			return attendance.MultidayAbsenceResponse{}, fmt.Errorf("failed to load holidays: %w", err)
		}
		for _, h := range holidays {
			holidayDates[h.Date] = true
		}
	}

	reason := req.Reason
	marked := 0
	skipped := 0
	for _, d := range dateutil.Range(req.StartDate, req.EndDate) {
		if holidayDates[d] {
			skipped++
			continue
		}
		rec := attendance.Record{
			EmployeeID: req.EmployeeID,
			Date:       d,
			Status:     attendance.StatusAbsent,
			Reason:     &reason,
		}
		if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
			return attendance.MultidayAbsenceResponse{}, fmt.Errorf("failed to upsert absence for %s: %w", d, err)
		}
		marked++
	}

	return attendance.MultidayAbsenceResponse{
		EmployeeID:      req.EmployeeID,
		StartDate:       req.StartDate.String(),
		EndDate:         req.EndDate.String(),
		DaysMarked:      marked,
		HolidaysSkipped: skipped,
	}, nil
}
