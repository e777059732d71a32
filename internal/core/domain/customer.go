package domain

// Customer is a person the shop lends to, trades with or keeps udhari with.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IDProof    string `json:"idProof"` // Free text, e.g. "Aadhaar XXXX-1234"
	Notes      string `json:"notes"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// CustomerSummary aggregates what a customer currently owes or is owed.
type CustomerSummary struct {
	Customer             Customer       `json:"customer"`
	OpenLoans            []LoanPosition `json:"openLoans"`
	LoanOutstandingPaise int64          `json:"loanOutstandingPaise"`
	LoanInterestDuePaise int64          `json:"loanInterestDuePaise"`
	UdhariGivenOpenPaise int64          `json:"udhariGivenOpenPaise"`
	UdhariTakenOpenPaise int64          `json:"udhariTakenOpenPaise"`
	OpenUdhariCount      int            `json:"openUdhariCount"`
}

// CustomerFilter narrows customer listings. Search matches a name or phone prefix.
type CustomerFilter struct {
	Search     string
	ActiveOnly bool
	Limit      int
	Offset     int
}
