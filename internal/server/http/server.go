package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/ekisa-team/speakstore/internal/function"
)

const (
	apiTitle   = "speakstore"
	apiVersion = "1.0.0"
)

// HealthOutput is the huma output for the Health operation.
type HealthOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

// NewAPI registers every route on mux and returns the huma API.
func NewAPI(mux *http.ServeMux, handler *function.Handler) huma.API {
	api := humago.New(mux, huma.DefaultConfig(apiTitle, apiVersion))

	RegisterRoutes(api, handler)

	return api
}

// RegisterRoutes registers the speech and health routes on api.
func RegisterRoutes(api huma.API, handler *function.Handler) {
	NewTTSHandler(api, handler)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness probe",
		Tags:        []string{"health"},
	}, func(context.Context, *struct{}) (*HealthOutput, error) {
		out := &HealthOutput{}
		out.Body.Status = "ok"
		return out, nil
	})
}

// NewServer builds the local HTTP server.
func NewServer(port int, handler *function.Handler) *http.Server {
	mux := http.NewServeMux()
	NewAPI(mux, handler)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
