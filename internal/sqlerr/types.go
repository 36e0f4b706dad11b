package sqlerr

// Code classifies a PostgreSQL error into the handful of categories the
// application reacts to. Everything unrecognized maps to Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	InvalidTextRepresentation
	InvalidRegularExpression
	StringDataRightTruncation
)

// Severity mirrors the PostgreSQL error severity field.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
	SeverityWarning
	SeverityOther
)

// SQLSTATE codes this package recognizes.
// Reference: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlstateUniqueViolation           = "23505"
	sqlstateForeignKeyViolation       = "23503"
	sqlstateNotNullViolation          = "23502"
	sqlstateCheckViolation            = "23514"
	sqlstateInvalidTextRepresentation = "22P02"
	sqlstateInvalidRegularExpression  = "2201B"
	sqlstateStringDataRightTruncation = "22001"
)

// MapCode maps a raw SQLSTATE string to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case sqlstateUniqueViolation:
		return UniqueViolation
	case sqlstateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlstateNotNullViolation:
		return NotNullViolation
	case sqlstateCheckViolation:
		return CheckViolation
	case sqlstateInvalidTextRepresentation:
		return InvalidTextRepresentation
	case sqlstateInvalidRegularExpression:
		return InvalidRegularExpression
	case sqlstateStringDataRightTruncation:
		return StringDataRightTruncation
	default:
		return Other
	}
}

// MapSeverity maps the severity string reported by the server to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	default:
		return SeverityOther
	}
}

// Error is the normalized form of a PostgreSQL server error.
//
// It keeps the original SQLSTATE (DatabaseCode) and the schema metadata
// the server reports, so callers can produce precise client messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.As/Is chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}
