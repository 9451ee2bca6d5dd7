package provenance

import "go.uber.org/zap"

var defaultGraph = NewGraph(DefaultConfig(), zap.NewNop())

// Default returns the package-level Graph that package value and package
// calc record into when no explicit Graph is threaded through.
func Default() *Graph { return defaultGraph }

// Configure replaces the default Graph's Config.
func Configure(cfg Config) { defaultGraph.Configure(cfg) }

// SetLogger replaces the default Graph's logger.
func SetLogger(logger *zap.Logger) { defaultGraph.SetLogger(logger) }
