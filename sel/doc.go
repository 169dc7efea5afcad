// Package sel provides selection operators: functions that pick members
// from a population's group as parents or survivors. This is a rewrite of
// cbarrick-evo's sel package (Tournament/BinaryTournament/RoundRobin/Elite)
// over galex.Group instead of bare evo.Genome varargs, and without that
// package's channel-actor Pool type — this module's concurrency is
// supplied by the branch package, so selection operators here are plain,
// synchronous functions safe to call once per branch.
package sel
