package attendance

import (
	"context"
)

// AttendanceService covers direct attendance writes outside the
// conversational collection flow.
type AttendanceService interface {
	// MarkMultidayAbsence upserts absent records for every date in the
	// inclusive range. Idempotent: re-running the call produces the same
	// stored state.
	MarkMultidayAbsence(ctx context.Context, req MultidayAbsenceRequest) (MultidayAbsenceResponse, error)
}
