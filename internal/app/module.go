package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.bridge.enabled") {
		closer, err := bridge.New(bridge.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
		})
		if err != nil {
			slog.Error("failed to init module bridge", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Bridge"] = closer
		}
	}
}
