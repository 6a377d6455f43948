package entity

// Summary par id/nombre usado por los listados que alimentan los multi-select del admin.
type Summary struct {
	ID   int64
	Name string
}
