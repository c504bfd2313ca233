package schema

// Custom string types for type safety.
type (
	// MethodName identifies a bus factor calculation method.
	MethodName string

	// OutputMode represents the format of the output.
	OutputMode string

	// RiskLevel represents the qualitative risk of a bus factor value.
	RiskLevel string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All calculation methods supported.
const (
	StandardMethod MethodName = "standard" // default
	DecayMethod    MethodName = "decay"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All risk levels supported, from worst to best.
const (
	CriticalRisk RiskLevel = "CRITICAL"
	HighRisk     RiskLevel = "HIGH"
	ModerateRisk RiskLevel = "MODERATE"
	LowRisk      RiskLevel = "LOW"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Analysis defaults and fixed constants.
const (
	// DefaultDecayRate is the yearly exponential decay rate for the decay method.
	DefaultDecayRate = 0.5

	// DefaultWindowDays bounds the commit history lookback for decay weighting.
	DefaultWindowDays = 548

	// DefaultThreshold is the ownerless-file ratio that must be strictly
	// exceeded to stop the removal simulation.
	DefaultThreshold = 0.5

	// MaxDecayFactor is applied when a contributor has no commit record for
	// a file within the history window. It preserves a small positive signal
	// so strict ordering survives downstream tie-breaking.
	MaxDecayFactor = 0.01

	// TopContributorLimit caps the ranked contributor list in reports.
	TopContributorLimit = 10
)

// AllMethods returns a list of all supported calculation methods.
var AllMethods = []MethodName{StandardMethod, DecayMethod}

// ValidMethods lists all valid calculation methods.
var ValidMethods = map[MethodName]struct{}{
	StandardMethod: {},
	DecayMethod:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
