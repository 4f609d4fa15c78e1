package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod     = "method"
	AttrPath       = "path"
	AttrStatus     = "status"
	AttrProvider   = "provider"
	AttrOperation  = "operation"
	AttrConfidence = "confidence"
	AttrSource     = "source"
)

const defaultServiceName = "nba-predictor-service"
