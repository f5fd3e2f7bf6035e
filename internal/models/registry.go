package models

// All returns every persisted model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Expense{},
		&Asset{},
		&Liability{},
		&Goal{},
		&AuditLog{},
		&RevokedToken{},
	}
}
