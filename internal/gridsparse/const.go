package gridsparse

// Defaults applied by loadConfig.
const (
	DefaultConfig   = "configs/config.json"
	DefaultOut      = "entries.raw"
	DefaultFormat   = FormatRaw
	DefaultCapacity = "exact"
	DebugSamples    = 8       // samples traced with DebugLog when Debug is on
	MaxPrealloc     = 1 << 16 // entries allocated up front for CapacityFixed; more are appended on demand

	FormatRaw     = "raw"
	FormatMsgpack = "msgpack"
)
