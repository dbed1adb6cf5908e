package commands

import "go.uber.org/zap"

var nopLogger = zap.NewNop().Sugar()
