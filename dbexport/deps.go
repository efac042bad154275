package dbexport

// File writer entry points used by Session, swappable in tests.
var (
	initOutputFile = InitOutputFile
	appendBatch    = AppendBatch
)
