package dto

// SummaryParams selects the day the summary is computed for.
type SummaryParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"` // Today when omitted
}

// ExportParams defines query parameters for exports.
type ExportParams struct {
	Format string `form:"format,default=csv" binding:"oneof=csv xlsx"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
