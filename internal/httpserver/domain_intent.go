package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "intent-engine/internal/intent/delivery/http"
)

// setupIntentDomain wires the intent HTTP handler onto the API group.
// The usecase is built by the caller so the Telegram handler and the
// background miner share the same taxonomy and learner.
func (srv HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := intentHTTP.New(srv.l, srv.intentUC)

	// Routes: registers /api/v1/intents/...
	intentHTTP.RegisterRoutes(api.Group("/intents"), h, srv.mw)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
