package domain

import "time"

// MetalRate is the shop's rate for one gram of fine metal on a day.
type MetalRate struct {
	RateID           string    `json:"rateID"`
	Metal            Metal     `json:"metal"`
	RateDate         time.Time `json:"rateDate"`
	RatePerGramPaise int64     `json:"ratePerGramPaise"`
	AuditFields
}
