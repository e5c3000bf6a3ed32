package constants

// MemberStatus is the employment state of a team member. Payroll is only
// generated for active members.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// PayrollStatus is the processing state of a generated payroll record.
type PayrollStatus string

const (
	PayrollPending PayrollStatus = "pending"
	PayrollPaid    PayrollStatus = "paid"
)

// PaymentStatus summarizes payments received against a target amount.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func ParseMemberStatus(s string) (MemberStatus, error) {
	return parseEnum("member status", s, MemberActive, []MemberStatus{MemberActive, MemberInactive})
}
