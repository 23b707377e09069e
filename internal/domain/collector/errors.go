package collector

import "errors"

var (
	ErrSessionInProgress   = errors.New("attendance collection already in progress")
	ErrNoActiveSession     = errors.New("no attendance collection session in progress")
	ErrDecisionNotExpected = errors.New("a decision is not expected right now")
	ErrReasonNotExpected   = errors.New("a reason is not expected right now")
	ErrNoActiveEmployees   = errors.New("no active employees to collect attendance for")
)
