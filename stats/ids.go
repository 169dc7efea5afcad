package stats

// Stable tracker IDs for the built-in trackers in builtin.go, used as map
// keys into a Registry so callers don't need to hold onto tracker values
// themselves.
const (
	IDPopulationSize  = "population_size"
	IDRawFitness      = "raw_fitness"
	IDScaledFitness   = "scaled_fitness"
	IDRawDeviation    = "raw_deviation"
	IDScaledDeviation = "scaled_deviation"
	IDOperationCount  = "operation_count"
	IDOperationTime   = "operation_time"
)
