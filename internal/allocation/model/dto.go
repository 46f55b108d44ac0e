package model

// AutoAllocateRequest represents the request to rebuild a round's allocations.
type AutoAllocateRequest struct {
	RoundID string `json:"round_id" binding:"required"`
}

// AutoAllocateResponse reports how many allocations the rebuild produced.
type AutoAllocateResponse struct {
	RoundID   string `json:"round_id"`
	Allocated int    `json:"allocated"`
}

// ListAllocationsResponse represents the allocations of a round.
type ListAllocationsResponse struct {
	RoundID     string       `json:"round_id"`
	Allocations []Allocation `json:"allocations"`
}
