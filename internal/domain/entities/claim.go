package entities

// ClaimStatus is owned by the external claim system. The estimate workflow only reads it.
type ClaimStatus string

const (
	ClaimStatusDiagnosing  ClaimStatus = "DIAGNOSING"
	ClaimStatusEstimating  ClaimStatus = "ESTIMATING"
	ClaimStatusUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimStatusApproved    ClaimStatus = "APPROVED"
	ClaimStatusRejected    ClaimStatus = "REJECTED"
	ClaimStatusCompleted   ClaimStatus = "COMPLETED"
)

// Claim is a warranty service request tied to a vehicle.
type Claim struct {
	ID     string      `json:"id"`
	VIN    string      `json:"vin"`
	Status ClaimStatus `json:"status"`
}
