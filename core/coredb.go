package core

import (
	"time"

	"go.uber.org/zap"
)

// CoreDB bundles the stores and implements the workflows on top of them.
type CoreDB struct {
	AccountDB
	PostDB
	ProfileDB
	Log *zap.SugaredLogger
	Now func() time.Time // defaults to time.Now
}

func (c *CoreDB) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *CoreDB) log() *zap.SugaredLogger {
	if c.Log != nil {
		return c.Log
	}
	return zap.NewNop().Sugar()
}
