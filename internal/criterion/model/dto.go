package model

// CreateCriterionRequest represents the request to register a criterion.
type CreateCriterionRequest struct {
	CriterionID     string  `json:"criterion_id"      binding:"required"`
	Description     string  `json:"description"`
	DefaultMaxScore float64 `json:"default_max_score" binding:"required"`
}

// SetRoundCriterionRequest represents the request to attach a criterion to a round.
// Weight defaults to 1 when omitted.
type SetRoundCriterionRequest struct {
	RoundID     string   `json:"round_id"     binding:"required"`
	CriterionID string   `json:"criterion_id" binding:"required"`
	IsActive    *bool    `json:"is_active"    binding:"required"`
	Weight      *float64 `json:"weight"`
}

// ListCriteriaResponse represents the response for listing criteria.
type ListCriteriaResponse struct {
	Criteria []Criterion `json:"criteria"`
}

// RoundCriteriaResponse represents the criteria configured for a round.
type RoundCriteriaResponse struct {
	RoundID  string               `json:"round_id"`
	Criteria []RoundCriterionView `json:"criteria"`
}
