package spin

import (
	"errors"
	"net/http"

	dto "staro_backend/internal/api/dto/spin"
	"staro_backend/internal/converter"
	"staro_backend/internal/model"
	"staro_backend/internal/service"
	"staro_backend/pkg/req"
	"staro_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.SpinService
}

type Handler struct {
	serv service.SpinService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin выполняет спин. Бизнес-отказ уходит со статусом 200 и ok=false:
// клиент ветвится по payload, а не по статусу
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if payload.UserID == "" || (payload.Type != model.SpinTypeFree && payload.Type != model.SpinTypePaid) {
		http.Error(w, "invalid spin type", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "spin failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// History отдает последние записи аудита пользователя
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	entries, err := h.serv.History(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "history failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries))
}
