package logger

import (
	"github.com/philipp01105/prefixlog/core"
)

// Config and PartialConfig re-exported for convenience
type (
	Config        = core.Config
	PartialConfig = core.PartialConfig
)

// Placeholders builds a placeholder map from alternating tokens and
// values. A trailing token without a value is ignored.
//
//	logger.Placeholders("%appName", "billing", "%region", "eu")
func Placeholders(pairs ...string) map[string]string {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}
