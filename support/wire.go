package support

import "github.com/google/wire"

var Set = wire.NewSet(
	Logger,
	Telemetry,
)
