package constants

// PartnerStatus is the lifecycle state of a business partner.
type PartnerStatus string

const (
	PartnerActive   PartnerStatus = "active"
	PartnerInactive PartnerStatus = "inactive"
)

// ParsePartnerStatus defaults a blank cell to active.
func ParsePartnerStatus(s string) (PartnerStatus, error) {
	return parseEnum("partner status", s, PartnerActive, []PartnerStatus{PartnerActive, PartnerInactive})
}
