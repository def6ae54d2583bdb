package cmdlog

import (
	"time"

	"twitnet/internal/logging"
	"twitnet/internal/metrics"
)

// Run executes one command, recording its outcome in metrics and the log.
func Run(cmd string, f func() error) error {
	start := time.Now()
	metrics.IncCommandRun(cmd)
	err := f()
	metrics.ObserveCommandDuration(cmd, start)
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error(cmd+"_error", map[string]any{"error": err.Error()})
	} else {
		logging.Info(cmd+"_ok", map[string]any{"elapsed_ms": time.Since(start).Milliseconds()})
	}
	return err
}
