package request

// InvestmentRequest is the payload for creating or updating an investment.
// Updates fully replace the mutable fields, so both POST and PUT share this
// shape. Tenure is given either in months or in years, never both.
type InvestmentRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	FDType       string  `json:"fdType"`
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annualRate"`
	TenureMonths int     `json:"tenureMonths"`
	TenureYears  float64 `json:"tenureYears"`
	StartDate    string  `json:"startDate"` // YYYY-MM-DD
}
