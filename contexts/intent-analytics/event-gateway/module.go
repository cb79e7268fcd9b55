package eventgateway

import (
	"log/slog"

	httpadapter "istari/contexts/intent-analytics/event-gateway/adapters/http"
	"istari/contexts/intent-analytics/event-gateway/application"
)

type Module struct {
	Handler    httpadapter.Handler
	Normalizer *application.NormalizeService
}

func NewModule(logger *slog.Logger) Module {
	normalizer := application.NewNormalizeService(logger)
	return Module{
		Handler: httpadapter.Handler{
			Normalizer: normalizer,
			Logger:     logger,
		},
		Normalizer: normalizer,
	}
}
