package constants

// TimesheetStatus is the review state of an imported timesheet row.
type TimesheetStatus string

const (
	TimesheetDraft     TimesheetStatus = "draft"
	TimesheetSubmitted TimesheetStatus = "submitted"
	TimesheetApproved  TimesheetStatus = "approved"
)

// AssignmentStatus is the lifecycle state of a contractor assignment.
// Only active assignments are eligible for timesheet matching.
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// ParseTimesheetStatus defaults a blank cell to draft.
func ParseTimesheetStatus(s string) (TimesheetStatus, error) {
	return parseEnum("timesheet status", s, TimesheetDraft,
		[]TimesheetStatus{TimesheetDraft, TimesheetSubmitted, TimesheetApproved})
}

func ParseAssignmentStatus(s string) (AssignmentStatus, error) {
	return parseEnum("assignment status", s, AssignmentStatus(""),
		[]AssignmentStatus{AssignmentActive, AssignmentCompleted, AssignmentCancelled})
}
