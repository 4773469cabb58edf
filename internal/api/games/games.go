package games

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "frogcasino_backend/internal/api/dto/games"
	"frogcasino_backend/internal/api/httperr"
	"frogcasino_backend/internal/config"
	"frogcasino_backend/internal/converter"
	"frogcasino_backend/internal/middleware"
	"frogcasino_backend/internal/model"
	"frogcasino_backend/internal/service"
	"frogcasino_backend/pkg/req"
	"frogcasino_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv     service.SettlementService
	GamesCfg config.GamesConfig
	SlotCfg  config.SlotConfig
	FrogCfg  config.FrogConfig
}

type Handler struct {
	serv     service.SettlementService
	gamesCfg config.GamesConfig
	slotCfg  config.SlotConfig
	frogCfg  config.FrogConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:     deps.Serv,
		gamesCfg: deps.GamesCfg,
		slotCfg:  deps.SlotCfg,
		frogCfg:  deps.FrogCfg,
	}
}

// PlaceBet - POST /games/{gameID}/bet
func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id not found in context")
		return
	}

	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	wager, err := converter.ToWager(chi.URLParam(r, "gameID"), payload)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	result, err := h.serv.PlaceWager(r.Context(), userID, wager)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlaceBetResponse(*result))
}

// Games - GET /games, список доступных игр
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamesResponse(h.gamesCfg.Games()))
}

// Paytable - GET /games/{gameID}/paytable.
// Клиент никогда не считает множители сам - отдаем таблицу движка
func (h *Handler) Paytable(w http.ResponseWriter, r *http.Request) {
	game, ok := h.gamesCfg.Game(chi.URLParam(r, "gameID"))
	if !ok || !game.IsActive {
		httperr.Write(w, model.ErrGameNotFound)
		return
	}

	response := converter.ToPaytableResponse(game, h.slotCfg.Symbols(), h.frogCfg.Paytable())
	resp.WriteJSONResponse(w, http.StatusOK, response)
}
