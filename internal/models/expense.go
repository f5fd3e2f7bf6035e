package models

import "time"

// ExpenseCategory is the closed set of expense categories.
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "Food"
	ExpenseCategoryTravel        ExpenseCategory = "Travel"
	ExpenseCategoryRent          ExpenseCategory = "Rent"
	ExpenseCategoryBills         ExpenseCategory = "Bills"
	ExpenseCategoryShopping      ExpenseCategory = "Shopping"
	ExpenseCategoryEntertainment ExpenseCategory = "Entertainment"
	ExpenseCategoryOther         ExpenseCategory = "Other"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryFood,
	ExpenseCategoryTravel,
	ExpenseCategoryRent,
	ExpenseCategoryBills,
	ExpenseCategoryShopping,
	ExpenseCategoryEntertainment,
	ExpenseCategoryOther,
}

// Valid reports whether c is a known category.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryFood, ExpenseCategoryTravel, ExpenseCategoryRent, ExpenseCategoryBills,
		ExpenseCategoryShopping, ExpenseCategoryEntertainment, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense is a single spend. Expenses are never edited, only deleted.
type Expense struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"-"`
	Title    string          `gorm:"not null" json:"title"`
	Amount   float64         `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category ExpenseCategory `gorm:"not null" json:"category"`
	Date     time.Time       `gorm:"type:date;not null;index" json:"date"`
}
