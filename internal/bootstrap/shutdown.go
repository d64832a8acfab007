package bootstrap

import (
	"context"

	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/scheduler"
	"github.com/osse101/Dreadlight_Go/internal/server"
	"github.com/osse101/Dreadlight_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Loop      *worker.Pool
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Tick scheduler (stop queueing frames)
// 3. Game loop (finish the running job)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		logger.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		logger.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.Loop != nil {
		logger.Info(LogMsgStoppingGameLoop)
		components.Loop.Stop()
	}

	logger.Info(LogMsgServerStopped)
}
