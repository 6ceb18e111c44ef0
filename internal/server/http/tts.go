package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ekisa-team/speakstore/internal/function"
)

type (
	// StoreSpeechRequestDTO is the request body for the StoreSpeech operation.
	StoreSpeechRequestDTO struct {
		Text string `json:"text,omitempty" doc:"Text to synthesize"`
	}
)

type (
	// StoreSpeechInput is the huma input for the StoreSpeech operation.
	StoreSpeechInput struct {
		Body StoreSpeechRequestDTO `required:"false"`
	}

	// StoreSpeechOutput is the huma output for the StoreSpeech operation.
	// Status carries the handler's status code, so failures keep the Lambda payload shape.
	StoreSpeechOutput struct {
		Status int
		Body   function.Payload
	}
)

// TTSHandler handles HTTP requests for TTS.
type TTSHandler struct {
	handler *function.Handler
}

// NewTTSHandler creates a new TTSHandler instance and registers its routes.
func NewTTSHandler(api huma.API, handler *function.Handler) *TTSHandler {
	h := &TTSHandler{handler: handler}

	huma.Register(api, huma.Operation{
		OperationID:   "store-speech",
		Method:        http.MethodPost,
		Path:          "/speech",
		Summary:       "Synthesize text and store the audio",
		Tags:          []string{"tts"},
		DefaultStatus: http.StatusOK,
	}, h.handleStoreSpeech)

	return h
}

func (h *TTSHandler) handleStoreSpeech(ctx context.Context, in *StoreSpeechInput) (*StoreSpeechOutput, error) {
	res := h.handler.Invoke(ctx, in.Body.Text)

	return &StoreSpeechOutput{
		Status: res.Status,
		Body:   res.Payload,
	}, nil
}
