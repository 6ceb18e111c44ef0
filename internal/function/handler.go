package function

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ekisa-team/speakstore/internal/service"
)

const (
	msgMissingText    = "Missing 'text' in request body."
	msgInternalError  = "Internal server error"
	msgStoredTemplate = "Audio file stored as %s in %s"
)

// Event is the invocation payload.
type Event struct {
	Text string `json:"text,omitempty"`
}

// UnmarshalJSON never fails: a payload that is not an object, or a text that
// is not a string, leaves Text empty so the invocation answers 400 instead of
// failing inside the runtime's decoder.
func (e *Event) UnmarshalJSON(data []byte) error {
	*e = Event{}

	var raw struct {
		Text json.RawMessage `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Debug("Ignoring malformed event", "error", err)
		return nil
	}

	if err := json.Unmarshal(raw.Text, &e.Text); err != nil && len(raw.Text) > 0 {
		slog.Debug("Ignoring non-string text", "text", string(raw.Text))
	}

	return nil
}

// Response is returned to the invoker. Body is a JSON encoded Payload.
type Response struct {
	Body       string `json:"body"`
	StatusCode int    `json:"statusCode"`
}

// Payload is the decoded response body.
type Payload struct {
	Message string `json:"message"`
	Bucket  string `json:"bucket,omitempty"`
	Key     string `json:"key,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Result is the outcome of an invocation before encoding.
type Result struct {
	Payload Payload
	Status  int
}

// Handler adapts invocation events to the TTS service.
type Handler struct {
	service *service.TTS
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.TTS) *Handler {
	return &Handler{service: svc}
}

// Handle is the Lambda entrypoint. It never returns an error; every failure is a response.
func (h *Handler) Handle(ctx context.Context, event Event) (Response, error) {
	res := h.Invoke(ctx, event.Text)

	body, err := json.Marshal(res.Payload)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"message":"` + msgInternalError + `"}`,
		}, nil
	}

	return Response{StatusCode: res.Status, Body: string(body)}, nil
}

// Invoke runs the service and maps its outcome to a status and payload.
func (h *Handler) Invoke(ctx context.Context, text string) Result {
	stored, err := h.service.Store(ctx, text)
	if err != nil {
		return failure(err)
	}

	return Result{
		Status: http.StatusOK,
		Payload: Payload{
			Message: fmt.Sprintf(msgStoredTemplate, stored.Key, stored.Bucket),
			Bucket:  stored.Bucket,
			Key:     stored.Key,
		},
	}
}

// failure converts a service error into a response. Only operational faults are logged as errors.
func failure(err error) Result {
	if errors.Is(err, service.ErrMissingText) {
		slog.Debug("Rejected request", "reason", err)
		return Result{
			Status:  http.StatusBadRequest,
			Payload: Payload{Message: msgMissingText},
		}
	}

	var (
		cfgErr  *service.ConfigError
		stepErr *service.StepError
		cause   = err
	)
	switch {
	case errors.As(err, &cfgErr):
		cause = cfgErr.Err
		slog.Error("Configuration error", "error", cause)
	case errors.As(err, &stepErr):
		cause = stepErr.Err
		slog.Error("External service error", "stage", stepErr.Stage, "error", cause)
	default:
		slog.Error("Unexpected error", "error", err)
	}

	return Result{
		Status: http.StatusInternalServerError,
		Payload: Payload{
			Message: msgInternalError,
			Error:   cause.Error(),
		},
	}
}
