package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
)

// SetMetalRateRequest sets the fine-metal rate for a day.
type SetMetalRateRequest struct {
	Metal            domain.Metal `json:"metal" binding:"required,metal"`
	RateDate         string       `json:"rateDate" binding:"required,datetime=2006-01-02"`
	RatePerGramPaise int64        `json:"ratePerGramPaise" binding:"required,gt=0"`
}

// ListMetalRatesParams defines query parameters for listing rates.
type ListMetalRatesParams struct {
	Metal domain.Metal `form:"metal" binding:"required,metal"`
	From  string       `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string       `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// LatestMetalRateParams selects the rate in force on a day.
type LatestMetalRateParams struct {
	Metal domain.Metal `form:"metal" binding:"required,metal"`
	AsOf  string       `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// MetalRateResponse defines the data returned for a rate.
type MetalRateResponse struct {
	RateID           string       `json:"rateID"`
	Metal            domain.Metal `json:"metal"`
	RateDate         string       `json:"rateDate"`
	RatePerGramPaise int64        `json:"ratePerGramPaise"`
	LastUpdatedAt    time.Time    `json:"lastUpdatedAt"`
	LastUpdatedBy    string       `json:"lastUpdatedBy"`
}

// ToMetalRateResponse converts a domain.MetalRate
func ToMetalRateResponse(r *domain.MetalRate) MetalRateResponse {
	return MetalRateResponse{
		RateID:           r.RateID,
		Metal:            r.Metal,
		RateDate:         FormatDate(r.RateDate),
		RatePerGramPaise: r.RatePerGramPaise,
		LastUpdatedAt:    r.LastUpdatedAt,
		LastUpdatedBy:    r.LastUpdatedBy,
	}
}

// ListMetalRatesResponse wraps rates.
type ListMetalRatesResponse struct {
	Rates []MetalRateResponse `json:"rates"`
}

// ToListMetalRatesResponse converts a slice of domain.MetalRate
func ToListMetalRatesResponse(list []domain.MetalRate) ListMetalRatesResponse {
	res := make([]MetalRateResponse, len(list))
	for i := range list {
		res[i] = ToMetalRateResponse(&list[i])
	}
	return ListMetalRatesResponse{Rates: res}
}
