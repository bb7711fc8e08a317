// Package modkit provides module wiring and core deps
package modkit

import (
	"padala/internal/platform/config"
	"padala/internal/platform/logger"
)

// Deps holds the core dependencies handed to every module. Wiring only, no
// behavior of its own.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// ZeroOK reports that zero-value Deps are safe in tests. Consumers still nil
// check optional collaborators.
func (d Deps) ZeroOK() bool { return true }
