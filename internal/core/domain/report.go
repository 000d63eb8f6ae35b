package domain

// EntityType names a reportable record collection.
type EntityType string

const (
	EntityOrder   EntityType = "order"
	EntityWage    EntityType = "wage"
	EntitySale    EntityType = "sale"
	EntityExpense EntityType = "expense"
	EntityIncome  EntityType = "income"
	EntityStock   EntityType = "stock"
)

// IsValid reports whether e names a known collection.
func (e EntityType) IsValid() bool {
	switch e {
	case EntityOrder, EntityWage, EntitySale, EntityExpense, EntityIncome, EntityStock:
		return true
	}
	return false
}

// ReportColumn describes one display column: the record field it reads and
// the human-readable header shown for it.
type ReportColumn struct {
	DisplayName string `json:"displayName"`
	FieldKey    string `json:"fieldKey"`
}

// ReportTable is a record collection shaped for display or export. Rows hold
// display-safe scalars only: dates as calendar-date strings, nested values as
// their JSON text, everything else passed through unchanged.
type ReportTable struct {
	Entity  EntityType       `json:"entity"`
	Columns []ReportColumn   `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
