package report

// DayStatus classifies one employee on one working day. Unmarked is the
// third status: an active employee with no record for the day.
type DayStatus string

const (
	DayPresent  DayStatus = "present"
	DayAbsent   DayStatus = "absent"
	DayUnmarked DayStatus = "unmarked"
)

type DailyEmployeeStatus struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Status     DayStatus `json:"status"`
	Reason     *string   `json:"reason,omitempty"`
}

type DailyReport struct {
	Date          string                `json:"date"`
	DateLong      string                `json:"date_long"`
	Holiday       bool                  `json:"holiday"`
	PresentCount  int                   `json:"present_count"`
	AbsentCount   int                   `json:"absent_count"`
	UnmarkedCount int                   `json:"unmarked_count"`
	Employees     []DailyEmployeeStatus `json:"employees"`
}

type EmployeePeriodSummary struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	PresentDays  int    `json:"present_days"`
	AbsentDays   int    `json:"absent_days"`
	UnmarkedDays int    `json:"unmarked_days"`
	// AttendanceRate is present days over working days, 0-100.
	AttendanceRate float64 `json:"attendance_rate"`
}

type HolidayInfo struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type PeriodReport struct {
	StartDate         string                  `json:"start_date"`
	EndDate           string                  `json:"end_date"`
	WorkingDayCount   int                     `json:"working_day_count"`
	TotalPresent      int                     `json:"total_present"`
	TotalAbsent       int                     `json:"total_absent"`
	Employees         []EmployeePeriodSummary `json:"employees"`
	Holidays          []HolidayInfo           `json:"holidays"`
	TopAbsenceReasons []ReasonCount           `json:"top_absence_reasons,omitempty"`
}

type AbsenceInfo struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type EmployeeReport struct {
	EmployeeID      string `json:"employee_id"`
	Name            string `json:"name"`
	Active          bool   `json:"active"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	WorkingDayCount int    `json:"working_day_count"`
	PresentDays     int    `json:"present_days"`
	AbsentDays      int    `json:"absent_days"`
	UnmarkedDays    int    `json:"unmarked_days"`
	AttendanceRate  float64 `json:"attendance_rate"`
	// Trend covers the last 7 calendar days of the range, oldest first:
	// P present, A absent, - unmarked or holiday.
	Trend          string        `json:"trend"`
	RecentAbsences []AbsenceInfo `json:"recent_absences"`
}
