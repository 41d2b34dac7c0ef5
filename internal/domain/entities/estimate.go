package entities

import "time"

// EstimateStatus represents the approval axis of an estimate lifecycle.
//
// Domain notes:
//   - pending is the initial state; approved/rejected are terminal business
//     decisions taken by the tenant admin, never by the calculator.
//   - No state ever transitions back to pending.
//   - "document generated" is a derived flag (PDFURL set), orthogonal to the
//     approval axis: a rejected estimate can still have its PDF regenerated.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// CanTransitionStatus reports whether the approval axis allows moving from
// current to requested. Unrecognized targets are rejected.
func CanTransitionStatus(current, requested EstimateStatus) bool {
	switch requested {
	case EstimateStatusApproved, EstimateStatusRejected:
		return current == EstimateStatusPending
	default:
		return false
	}
}

// AssignmentStatus tracks the staff-assignment sub-state, independent of the
// approval axis.
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// CanTransitionAssignment reports whether the assignment sub-state allows
// moving from current to requested (pending -> accepted -> completed,
// strictly forward).
func CanTransitionAssignment(current, requested AssignmentStatus) bool {
	switch requested {
	case AssignmentStatusAccepted:
		return current == AssignmentStatusPending
	case AssignmentStatusCompleted:
		return current == AssignmentStatusAccepted
	default:
		return false
	}
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	City  string `json:"city"`
}

// EstimateRecord is the persisted result of an estimate calculation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// Monetary representation:
//   - TotalAmount is the computed quote, rounded to whole currency units.
//     It is immutable once set unless the tenant admin edits it manually.
//   - Breakdown is frozen at submit time so that a regenerated document
//     always matches the quoted total even after the live config changes.
//
// Records are owned by the tenant and never deleted; rejection is a status,
// not removal.
type EstimateRecord struct {
	ID            string            `json:"id"`
	TenantID      string            `json:"tenant_id"`
	Customer      CustomerInfo      `json:"customer"`
	Configuration CustomerSelection `json:"configuration"`
	TotalAmount   float64           `json:"total_amount"`
	Breakdown     []LineItem        `json:"breakdown"`
	Status        EstimateStatus    `json:"status"`

	AssignedTo       string           `json:"assigned_to,omitempty"`
	AssignedToName   string           `json:"assigned_to_name,omitempty"`
	AssignmentStatus AssignmentStatus `json:"assignment_status,omitempty"`

	PDFURL    string    `json:"pdf_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentGenerated reports whether a shareable document exists for this
// estimate.
func (e EstimateRecord) DocumentGenerated() bool {
	return e.PDFURL != ""
}
