package collector

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterly/attendance-backend-go/internal/domain/attendance"
	"github.com/rosterly/attendance-backend-go/internal/domain/collector"
	"github.com/rosterly/attendance-backend-go/internal/domain/employee"
	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

type recordKey struct {
	employeeID string
	date       dateutil.Date
}

type fakeAttendanceRepo struct {
	records map[recordKey]attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[recordKey]attendance.Record)}
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.Record) error {
	f.records[recordKey{rec.EmployeeID, rec.Date}] = rec
	return nil
}

func (f *fakeAttendanceRepo) Query(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if activeOnly && !e.Active {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, id string, active bool) error {
	for i, e := range f.employees {
		if e.ID == id {
			f.employees[i].Active = active
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeHolidayRepo struct {
	holidays map[dateutil.Date]holiday.Holiday
}

func newFakeHolidayRepo(holidays ...holiday.Holiday) *fakeHolidayRepo {
	f := &fakeHolidayRepo{holidays: make(map[dateutil.Date]holiday.Holiday)}
	for _, h := range holidays {
		f.holidays[h.Date] = h
	}
	return f
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) error {
	f.holidays[h.Date] = h
	return nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, date dateutil.Date) error {
	delete(f.holidays, date)
	return nil
}

func (f *fakeHolidayRepo) Exists(ctx context.Context, date dateutil.Date) (bool, error) {
	_, ok := f.holidays[date]
	return ok, nil
}

func (f *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) ListRange(ctx context.Context, start, end dateutil.Date) ([]holiday.Holiday, error) {
	return nil, nil
}

var sessionDate = dateutil.New(2025, 7, 15)

func threeEmployees() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", Name: "Alice", Active: true},
		{ID: "emp-b", Name: "Bob", Active: true},
		{ID: "emp-c", Name: "Charlie", Active: true},
	}}
}

func newTestService(attendanceRepo *fakeAttendanceRepo, employeeRepo *fakeEmployeeRepo, holidayRepo *fakeHolidayRepo) *CollectorServiceImpl {
	svc := NewCollectorService(attendanceRepo, employeeRepo, holidayRepo, 10*time.Minute)
	return svc.(*CollectorServiceImpl)
}

func TestCollector_FullRun(t *testing.T) {
	ctx := context.Background()
	attendanceRepo := newFakeAttendanceRepo()
	svc := newTestService(attendanceRepo, threeEmployees(), newFakeHolidayRepo())

	step, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.False(t, step.Done)
	assert.Equal(t, collector.StateAwaitingDecision, step.Prompt.State)
	assert.Equal(t, "Alice", step.Prompt.EmployeeName)
	assert.Equal(t, 1, step.Prompt.Position)
	assert.Equal(t, 3, step.Prompt.Total)
	assert.Equal(t, []string{"present", "absent"}, step.Prompt.Choices)

	// Alice present.
	step, err = svc.Decide(ctx, "admin", attendance.StatusPresent)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, "Bob", step.Prompt.EmployeeName)
	assert.Equal(t, 2, step.Prompt.Position)

	// Bob absent: the state machine asks for a reason before moving on.
	step, err = svc.Decide(ctx, "admin", attendance.StatusAbsent)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, collector.StateAwaitingReason, step.Prompt.State)
	assert.Equal(t, "Bob", step.Prompt.EmployeeName)
	assert.Nil(t, step.Prompt.Choices)

	step, err = svc.Reason(ctx, "admin", "sick leave")
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, "Charlie", step.Prompt.EmployeeName)

	// Charlie present: last employee, the batch flushes.
	step, err = svc.Decide(ctx, "admin", attendance.StatusPresent)
	require.NoError(t, err)
	assert.True(t, step.Done)
	require.NotNil(t, step.Summary)
	assert.Equal(t, 3, step.Summary.RecordsSaved)
	assert.Equal(t, 2, step.Summary.Present)
	assert.Equal(t, 1, step.Summary.Absent)
	assert.Equal(t, "15-07-2025", step.Summary.Date)

	require.Len(t, attendanceRepo.records, 3)
	bob := attendanceRepo.records[recordKey{"emp-b", sessionDate}]
	assert.Equal(t, attendance.StatusAbsent, bob.Status)
	require.NotNil(t, bob.Reason)
	assert.Equal(t, "sick leave", *bob.Reason)
	for _, rec := range attendanceRepo.records {
		assert.Equal(t, sessionDate, rec.Date)
	}

	_, err = svc.Status(ctx, "admin")
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)
}

func TestCollector_SecondStartRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), threeEmployees(), newFakeHolidayRepo())

	_, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)

	_, err = svc.Start(ctx, "admin", sessionDate.AddDays(1))
	assert.ErrorIs(t, err, collector.ErrSessionInProgress)

	// The original session is untouched.
	step, err := svc.Status(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "15-07-2025", step.Prompt.SessionDate)
	assert.Equal(t, 1, step.Prompt.Position)
}

func TestCollector_NoActiveSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), threeEmployees(), newFakeHolidayRepo())

	_, err := svc.Decide(ctx, "admin", attendance.StatusPresent)
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)

	_, err = svc.Reason(ctx, "admin", "sick")
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)

	_, err = svc.Status(ctx, "admin")
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)

	err = svc.Cancel(ctx, "admin")
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)
}

func TestCollector_StateMismatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), threeEmployees(), newFakeHolidayRepo())

	_, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)

	// Awaiting a decision: free text is not expected.
	_, err = svc.Reason(ctx, "admin", "sick")
	assert.ErrorIs(t, err, collector.ErrReasonNotExpected)

	_, err = svc.Decide(ctx, "admin", attendance.StatusAbsent)
	require.NoError(t, err)

	// Awaiting a reason: a decision is not expected.
	_, err = svc.Decide(ctx, "admin", attendance.StatusPresent)
	assert.ErrorIs(t, err, collector.ErrDecisionNotExpected)
}

func TestCollector_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), threeEmployees(), newFakeHolidayRepo())

	_, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)

	var verrs validator.ValidationErrors
	_, err = svc.Decide(ctx, "admin", attendance.Status("maybe"))
	require.ErrorAs(t, err, &verrs)

	_, err = svc.Decide(ctx, "admin", attendance.StatusAbsent)
	require.NoError(t, err)

	_, err = svc.Reason(ctx, "admin", "   ")
	require.ErrorAs(t, err, &verrs)

	// Bad input never advances the session.
	step, err := svc.Status(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, step.Prompt.Position)
	assert.Equal(t, collector.StateAwaitingReason, step.Prompt.State)
}

func TestCollector_CancelDiscardsBatch(t *testing.T) {
	ctx := context.Background()
	attendanceRepo := newFakeAttendanceRepo()
	svc := newTestService(attendanceRepo, threeEmployees(), newFakeHolidayRepo())

	_, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)
	_, err = svc.Decide(ctx, "admin", attendance.StatusPresent)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "admin"))

	assert.Empty(t, attendanceRepo.records, "cancel must not persist partial batches")
	_, err = svc.Status(ctx, "admin")
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)
}

func TestCollector_EmptyRoster(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), &fakeEmployeeRepo{}, newFakeHolidayRepo())

	_, err := svc.Start(ctx, "admin", sessionDate)
	assert.ErrorIs(t, err, collector.ErrNoActiveEmployees)
}

func TestCollector_RosterSnapshotFrozen(t *testing.T) {
	ctx := context.Background()
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := threeEmployees()
	svc := newTestService(attendanceRepo, employeeRepo, newFakeHolidayRepo())

	_, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)

	// Hires and departures after Start do not change the running session.
	_, err = employeeRepo.Create(ctx, employee.Employee{ID: "emp-d", Name: "Dave", Active: true})
	require.NoError(t, err)
	require.NoError(t, employeeRepo.SetActive(ctx, "emp-c", false))

	for _, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusPresent} {
		_, err = svc.Decide(ctx, "admin", status)
		require.NoError(t, err)
	}
	step, err := svc.Decide(ctx, "admin", attendance.StatusPresent)
	require.NoError(t, err)
	require.True(t, step.Done)
	assert.Equal(t, 3, step.Summary.RecordsSaved)
	_, hasCharlie := attendanceRepo.records[recordKey{"emp-c", sessionDate}]
	assert.True(t, hasCharlie)
}

func TestCollector_HolidayAdvisory(t *testing.T) {
	ctx := context.Background()
	holidayRepo := newFakeHolidayRepo(holiday.Holiday{Date: sessionDate, Description: "Festival"})
	svc := newTestService(newFakeAttendanceRepo(), threeEmployees(), holidayRepo)

	step, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)
	assert.True(t, step.Prompt.Holiday)
}

func TestCollector_SweepExpired(t *testing.T) {
	ctx := context.Background()
	attendanceRepo := newFakeAttendanceRepo()
	svc := newTestService(attendanceRepo, threeEmployees(), newFakeHolidayRepo())

	current := time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	_, err := svc.Start(ctx, "stale", sessionDate)
	require.NoError(t, err)

	current = current.Add(5 * time.Minute)
	_, err = svc.Start(ctx, "fresh", sessionDate)
	require.NoError(t, err)

	// Ten minutes after the stale session's last activity, five after the
	// fresh one's.
	current = current.Add(5 * time.Minute)
	require.NoError(t, svc.SweepExpired(ctx))

	_, err = svc.Status(ctx, "stale")
	assert.ErrorIs(t, err, collector.ErrNoActiveSession)

	_, err = svc.Status(ctx, "fresh")
	assert.NoError(t, err)

	assert.Empty(t, attendanceRepo.records, "expired sessions must not persist partial batches")
}

func TestCollector_ActivityResetsTimeout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), threeEmployees(), newFakeHolidayRepo())

	current := time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	_, err := svc.Start(ctx, "admin", sessionDate)
	require.NoError(t, err)

	current = current.Add(9 * time.Minute)
	_, err = svc.Decide(ctx, "admin", attendance.StatusPresent)
	require.NoError(t, err)

	current = current.Add(9 * time.Minute)
	require.NoError(t, svc.SweepExpired(ctx))

	step, err := svc.Status(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, step.Prompt.Position)
}
