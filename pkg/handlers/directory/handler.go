package directory

import (
	"encoding/json"
	"net/http"

	"github.com/fin-tools/ledger-lens/pkg/adapters"
	"github.com/fin-tools/ledger-lens/pkg/models/api"
	"github.com/fin-tools/ledger-lens/pkg/services/directory"
	"github.com/rs/zerolog"
)

type Handler struct {
	dir directory.Service
}

func NewHandler(dir directory.Service) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	businesses, err := h.dir.ListBusinesses(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list businesses")
		http.Error(w, "failed to list businesses", http.StatusInternalServerError)
		return
	}

	response := make([]api.Business, 0, len(businesses))
	for _, b := range businesses {
		response = append(response, adapters.MapBusiness(b))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode businesses")
	}
}
