package domain

// FieldKind is the value kind of a registered field. The predicate
// builder uses it to coerce raw request values before they reach SQL.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInteger
	KindDecimal
	KindDate
	KindNullableDate
	KindEnum
)

// Field describes one sortable/filterable attribute: the SQL column it
// resolves to and the kind of values it holds.
type Field struct {
	Column string
	Kind   FieldKind
}

// FieldSet is the closed set of field names an entity exposes for
// sorting and filtering. Lookup is case-sensitive and exact-match;
// anything outside the set is rejected before query construction.
//
// This table replaces open-ended attribute lookup on the model: a field
// name from a request can only ever resolve to one of these columns.
type FieldSet map[string]Field

// Resolve looks up a field by its exact name.
func (fs FieldSet) Resolve(name string) (Field, bool) {
	f, ok := fs[name]
	return f, ok
}

// CarFields registers the sortable/filterable attributes of cars.
var CarFields = FieldSet{
	"id":         {Column: "cars.id", Kind: KindInteger},
	"number":     {Column: "cars.number", Kind: KindText},
	"brand":      {Column: "cars.brand", Kind: KindText},
	"year":       {Column: "cars.year", Kind: KindInteger},
	"owner_name": {Column: "cars.owner_name", Kind: KindText},
}

// MechanicFields registers the sortable/filterable attributes of mechanics.
var MechanicFields = FieldSet{
	"id":               {Column: "mechanics.id", Kind: KindInteger},
	"employee_no":      {Column: "mechanics.employee_no", Kind: KindText},
	"full_name":        {Column: "mechanics.full_name", Kind: KindText},
	"experience_years": {Column: "mechanics.experience_years", Kind: KindInteger},
	"grade":            {Column: "mechanics.grade", Kind: KindInteger},
}

// OrderFields registers the sortable/filterable attributes of orders.
// The meta document is deliberately absent: it is only reachable
// through the pattern search, never through sort or comparison filters.
var OrderFields = FieldSet{
	"id":               {Column: "orders.id", Kind: KindInteger},
	"car_id":           {Column: "orders.car_id", Kind: KindInteger},
	"mechanic_id":      {Column: "orders.mechanic_id", Kind: KindInteger},
	"cost":             {Column: "orders.cost", Kind: KindDecimal},
	"issue_date":       {Column: "orders.issue_date", Kind: KindDate},
	"work_type":        {Column: "orders.work_type", Kind: KindText},
	"planned_end_date": {Column: "orders.planned_end_date", Kind: KindDate},
	"actual_end_date":  {Column: "orders.actual_end_date", Kind: KindNullableDate},
	"status":           {Column: "orders.status", Kind: KindEnum},
}
