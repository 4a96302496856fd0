package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldKey        = "key"
	FieldAccountID  = "account_id"
	FieldTxID       = "transaction_id"
	FieldCategoryID = "category_id"
	FieldAmount     = "amount"
	FieldCount      = "count"
	FieldDriver     = "driver"
	FieldExpected   = "expected"
	FieldActual     = "actual"
	FieldCurrency   = "currency"
	FieldPeriod     = "period"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStorage  = "storage"
	ComponentAccount  = "account"
	ComponentTx       = "transaction"
	ComponentCategory = "category"
	ComponentSettings = "settings"
	ComponentReport   = "report"
)

// Operations defines standard operation names
const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpLoad    = "load"
	OpSave    = "save"
	OpSeed    = "seed"
	OpAudit   = "audit"
	OpExport  = "export"
	OpStartup = "startup"
)
