package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Fanadillah/kasku-app/internal/api/middleware"
	"github.com/Fanadillah/kasku-app/internal/domain"
	"github.com/Fanadillah/kasku-app/internal/extract"
)

// ExtractHandler exposes the extraction pipeline over HTTP.
type ExtractHandler struct {
	svc *extract.Service
	log zerolog.Logger
}

func NewExtractHandler(svc *extract.Service, log zerolog.Logger) *ExtractHandler {
	return &ExtractHandler{svc: svc, log: log}
}

type extractRequest struct {
	Text           string `json:"text"`
	TelegramUserID string `json:"telegram_user_id"`
}

// Extract handles POST /api/extract.
// Success: {ok:true, data: Item | Item[], message}. Any pipeline failure
// is a 400 with {ok:false, error}; nothing is retried.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" || req.TelegramUserID == "" {
		middleware.WriteError(w, http.StatusBadRequest, "text and telegram_user_id are required")
		return
	}

	// The web form submits under the pseudo-id "web"; everything else
	// arrives via the chat gateway.
	source := domain.SourceTelegram
	if req.TelegramUserID == "web" {
		source = domain.SourceWeb
	}

	res, err := h.svc.Extract(r.Context(), req.Text, req.TelegramUserID, source)
	if err != nil {
		h.log.Error().Err(err).Str("external_id", req.TelegramUserID).Msg("extraction failed")
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	// A lone item stays an object on the wire, an actual batch an array,
	// mirroring whatever shape the model produced.
	var data interface{} = res.Items
	if len(res.Items) == 1 {
		data = res.Items[0]
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"data":    data,
		"message": res.Message,
	})
}
