package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/collector"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

// session is one admin's in-flight collection run. The employee snapshot is
// frozen at Start; registry changes during the session do not alter it.
type session struct {
	adminID      string
	date         dateutil.Date
	state        collector.State
	index        int
	employees    []employee.Employee
	batch        []attendance.Record
	holiday      bool
	lastActivity time.Time
}

type CollectorServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	timeout        time.Duration
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewCollectorService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	timeout time.Duration,
) collector.CollectorService {
	return &CollectorServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		timeout:        timeout,
		now:            time.Now,
		sessions:       make(map[string]*session),
	}
}

// Start implements collector.CollectorService.
func (s *CollectorServiceImpl) Start(ctx context.Context, adminID string, date dateutil.Date) (collector.StepResponse, error) {
	if date.IsZero() {
		return collector.StepResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "date is required"},
		}
	}

	s.mu.Lock()
	_, exists := s.sessions[adminID]
	s.mu.Unlock()
	if exists {
		return collector.StepResponse{}, collector.ErrSessionInProgress
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return collector.StepResponse{}, fmt.Errorf("failed to snapshot active employees: %w", err)
	}
	if len(employees) == 0 {
		return collector.StepResponse{}, collector.ErrNoActiveEmployees
	}

	isHoliday, err := s.holidayRepo.Exists(ctx, date)
	if err != nil {
		return collector.StepResponse{}, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	sess := &session{
		adminID:      adminID,
		date:         date,
		state:        collector.StateAwaitingDecision,
		employees:    employees,
		holiday:      isHoliday,
		lastActivity: s.now(),
	}

	s.mu.Lock()
	if _, exists := s.sessions[adminID]; exists {
		s.mu.Unlock()
		return collector.StepResponse{}, collector.ErrSessionInProgress
	}
	s.sessions[adminID] = sess
	prompt := sess.prompt()
	s.mu.Unlock()

	slog.Info("Attendance collection started", "admin", adminID, "date", date.String(), "employees", len(employees))
	return collector.StepResponse{Prompt: &prompt}, nil
}

// Status implements collector.CollectorService.
func (s *CollectorServiceImpl) Status(ctx context.Context, adminID string) (collector.StepResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[adminID]
	if !ok {
		return collector.StepResponse{}, collector.ErrNoActiveSession
	}
	prompt := sess.prompt()
	return collector.StepResponse{Prompt: &prompt}, nil
}

// Decide implements collector.CollectorService.
func (s *CollectorServiceImpl) Decide(ctx context.Context, adminID string, status attendance.Status) (collector.StepResponse, error) {
	if !validator.IsValidStatus(string(status)) {
		return collector.StepResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "status must be present or absent"},
		}
	}

	s.mu.Lock()
	sess, ok := s.sessions[adminID]
	if !ok {
		s.mu.Unlock()
		return collector.StepResponse{}, collector.ErrNoActiveSession
	}
	if sess.state != collector.StateAwaitingDecision {
		s.mu.Unlock()
		return collector.StepResponse{}, collector.ErrDecisionNotExpected
	}
	sess.lastActivity = s.now()

	if status == attendance.StatusAbsent {
		sess.state = collector.StateAwaitingReason
		prompt := sess.prompt()
		s.mu.Unlock()
		return collector.StepResponse{Prompt: &prompt}, nil
	}

	sess.batch = append(sess.batch, attendance.Record{
		EmployeeID: sess.employees[sess.index].ID,
		Date:       sess.date,
		Status:     attendance.StatusPresent,
	})
	return s.advance(ctx, adminID, sess)
}

// Reason implements collector.CollectorService.
func (s *CollectorServiceImpl) Reason(ctx context.Context, adminID string, text string) (collector.StepResponse, error) {
	if validator.IsEmpty(text) {
		return collector.StepResponse{}, validator.ValidationErrors{
			{Field: "reason", Message: "reason is required"},
		}
	}

	s.mu.Lock()
	sess, ok := s.sessions[adminID]
	if !ok {
		s.mu.Unlock()
		return collector.StepResponse{}, collector.ErrNoActiveSession
	}
	if sess.state != collector.StateAwaitingReason {
		s.mu.Unlock()
		return collector.StepResponse{}, collector.ErrReasonNotExpected
	}
	sess.lastActivity = s.now()

	reason := text
	sess.batch = append(sess.batch, attendance.Record{
		EmployeeID: sess.employees[sess.index].ID,
		Date:       sess.date,
		Status:     attendance.StatusAbsent,
		Reason:     &reason,
	})
	return s.advance(ctx, adminID, sess)
}

// advance moves to the next employee or, past the last one, tears the
// session down and persists the batch. Called with s.mu held; releases it.
func (s *CollectorServiceImpl) advance(ctx context.Context, adminID string, sess *session) (collector.StepResponse, error) {
	sess.index++
	sess.state = collector.StateAwaitingDecision

	if sess.index < len(sess.employees) {
		prompt := sess.prompt()
		s.mu.Unlock()
		return collector.StepResponse{Prompt: &prompt}, nil
	}

	// Complete: tear down before flushing so the upserts run outside the
	// lock. A flush failure leaves the store untouched beyond the records
	// already written; re-running the collection overwrites the same keys.
	delete(s.sessions, adminID)
	batch := sess.batch
	date := sess.date
	s.mu.Unlock()

	return s.flush(ctx, adminID, date, batch)
}

func (s *CollectorServiceImpl) flush(ctx context.Context, adminID string, date dateutil.Date, batch []attendance.Record) (collector.StepResponse, error) {
	present := 0
	absent := 0
	for _, rec := range batch {
		if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
			return collector.StepResponse{}, fmt.Errorf("failed to persist attendance for %s: %w", date, err)
		}
		if rec.Status == attendance.StatusPresent {
			present++
		} else {
			absent++
		}
	}

	slog.Info("Attendance collection completed", "admin", adminID, "date", date.String(), "records", len(batch))
	return collector.StepResponse{
		Done: true,
		Summary: &collector.Summary{
			Date:         date.String(),
			RecordsSaved: len(batch),
			Present:      present,
			Absent:       absent,
		},
	}, nil
}

// Cancel implements collector.CollectorService.
func (s *CollectorServiceImpl) Cancel(ctx context.Context, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[adminID]; !ok {
		return collector.ErrNoActiveSession
	}
	delete(s.sessions, adminID)
	slog.Info("Attendance collection cancelled", "admin", adminID)
	return nil
}

// SweepExpired implements collector.CollectorService.
func (s *CollectorServiceImpl) SweepExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for adminID, sess := range s.sessions {
		if now.Sub(sess.lastActivity) >= s.timeout {
			delete(s.sessions, adminID)
			slog.Info("Attendance collection timed out", "admin", adminID, "date", sess.date.String())
		}
	}
	return nil
}

func (sess *session) prompt() collector.Prompt {
	emp := sess.employees[sess.index]
	p := collector.Prompt{
		State:        sess.state,
		SessionDate:  sess.date.String(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Position:     sess.index + 1,
		Total:        len(sess.employees),
		Holiday:      sess.holiday,
	}
	switch sess.state {
	case collector.StateAwaitingReason:
		p.Message = fmt.Sprintf("Reason for %s's absence:", emp.Name)
	default:
		p.Message = fmt.Sprintf("Employee #%d of %d: %s. Present or absent?", p.Position, p.Total, emp.Name)
		p.Choices = []string{string(attendance.StatusPresent), string(attendance.StatusAbsent)}
	}
	return p
}
