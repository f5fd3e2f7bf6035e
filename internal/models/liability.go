package models

// LiabilityType is the closed set of debt kinds.
type LiabilityType string

const (
	LiabilityTypeCreditCard   LiabilityType = "Credit Card"
	LiabilityTypePersonalLoan LiabilityType = "Personal Loan"
	LiabilityTypeHomeLoan     LiabilityType = "Home Loan"
	LiabilityTypeCarLoan      LiabilityType = "Car Loan"
	LiabilityTypeEMI          LiabilityType = "EMI"
)

// LiabilityTypes lists every liability type in display order.
var LiabilityTypes = []LiabilityType{
	LiabilityTypeCreditCard,
	LiabilityTypePersonalLoan,
	LiabilityTypeHomeLoan,
	LiabilityTypeCarLoan,
	LiabilityTypeEMI,
}

// Valid reports whether t is a known liability type.
func (t LiabilityType) Valid() bool {
	switch t {
	case LiabilityTypeCreditCard, LiabilityTypePersonalLoan, LiabilityTypeHomeLoan, LiabilityTypeCarLoan, LiabilityTypeEMI:
		return true
	}
	return false
}

// Liability is an outstanding debt. InterestRate is an annual percentage.
type Liability struct {
	Base
	UserID            string        `gorm:"type:uuid;not null;index" json:"-"`
	Name              string        `gorm:"not null" json:"name"`
	Type              LiabilityType `gorm:"not null" json:"type"`
	OutstandingAmount float64       `gorm:"type:numeric(14,2);not null" json:"outstanding_amount"`
	InterestRate      float64       `gorm:"type:numeric(7,3);not null;default:0" json:"interest_rate"`
	MonthlyPayment    float64       `gorm:"type:numeric(14,2);not null;default:0" json:"monthly_payment"`
}
