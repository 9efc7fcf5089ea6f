package gorm

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Member{},
		&ContractRecord{},
		&WorkContract{},
		&IoFlight{},
		&Experience{},
	}
}
