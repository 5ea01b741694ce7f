package gridsparse

var (
	Debug     = false // set to true to trace per-sample geometry from Run
	CountOnly = false // set to true to only count entries (capacity planning dry run)
	Prune     = false // set to true to force early-exit pruning regardless of config
)
