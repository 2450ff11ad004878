package dto

// Error represents a standard error response. Reason carries a short
// machine-readable code when one applies.
type Error struct {
	Error  string `json:"error" example:"error message"`
	Reason string `json:"reason,omitempty" example:"UNKNOWN_TABLE"`
}
