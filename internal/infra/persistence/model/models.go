// Package model holds the GORM table mappings of the auth subsystem.
package model

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&OtpModel{},
		&ResetTicketModel{},
	}
}
