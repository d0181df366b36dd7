package economy

import (
	"errors"
	"net/http"

	dto "staro_backend/internal/api/dto/economy"
	"staro_backend/internal/converter"
	"staro_backend/internal/service"
	"staro_backend/pkg/req"
	"staro_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.EconomyService
}

type Handler struct {
	serv service.EconomyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// User отдает снимок аккаунта вместе с лидербордами
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	info, err := h.serv.UserInfo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "user info failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(*info))
}

// Deposit зачисляет мок-депозит. Верификация платежа вне области
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if payload.UserID == "" || payload.AmountTon <= 0 {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Deposit(r.Context(), payload.UserID, payload.AmountTon)
	if err != nil {
		http.Error(w, "deposit failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDepositResponse(*result))
}

// Daily начисляет ежедневный бонус. Повторный запрос за день - это
// не ошибка, а ответ 200 с ok=false
func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DailyRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if payload.UserID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.ClaimDaily(r.Context(), payload.UserID)
	if err != nil {
		http.Error(w, "daily claim failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDailyResponse(*result))
}

// BuyBoost устанавливает множитель буста. Оплата замокана:
// без paid=true запрос отклоняется
func (h *Handler) BuyBoost(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BuyBoostRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if payload.UserID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !payload.Paid {
		http.Error(w, "payment required (mock)", http.StatusBadRequest)
		return
	}

	result, err := h.serv.BuyBoost(r.Context(), payload.UserID, payload.Box)
	if err != nil {
		if errors.Is(err, service.ErrUnknownBox) {
			http.Error(w, "unknown box", http.StatusBadRequest)
			return
		}
		http.Error(w, "buy boost failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBuyBoostResponse(*result))
}

// Leaderboards отдает три проекции отдельно от снимка пользователя
func (h *Handler) Leaderboards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.serv.Leaderboards(r.Context())
	if err != nil {
		http.Error(w, "leaderboards failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardsResponse(*boards))
}
