package collector

// Prompt is the next question the interaction channel should put to the
// admin. Choices is nil when free text is expected (an absence reason).
type Prompt struct {
	State        State    `json:"state"`
	SessionDate  string   `json:"session_date"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Position     int      `json:"position"`
	Total        int      `json:"total"`
	Message      string   `json:"message"`
	Choices      []string `json:"choices,omitempty"`
	Holiday      bool     `json:"holiday,omitempty"`
}

// Summary describes a completed session after its batch has been persisted.
type Summary struct {
	Date         string `json:"date"`
	RecordsSaved int    `json:"records_saved"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
}

// StepResponse is what every collector operation hands back: either the next
// prompt, or the completion summary once every employee has been processed.
type StepResponse struct {
	Done    bool     `json:"done"`
	Prompt  *Prompt  `json:"prompt,omitempty"`
	Summary *Summary `json:"summary,omitempty"`
}
