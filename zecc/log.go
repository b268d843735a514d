// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"sync"

	log "github.com/luxfi/log"
)

var (
	loggerMu sync.RWMutex
	logger   log.Logger = log.NewTestLogger(log.InfoLevel)
)

// SetLogger installs the embedder's logger. Operations log backend
// escalation decisions at debug level; backend failures are returned to
// the caller, not logged. Key material is never logged.
func SetLogger(l log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func getLogger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
