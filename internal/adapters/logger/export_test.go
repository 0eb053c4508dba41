// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)

// NewFromEnvExported exports the environment-driven constructor used by the Graft node.
var NewFromEnvExported = newFromEnv
