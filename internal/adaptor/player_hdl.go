package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"club-roster/internal/dto/request"
	"club-roster/internal/usecase"
	"club-roster/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayerHandler struct {
	service usecase.PlayerService
	log     *zap.Logger
}

func NewPlayerHandler(service usecase.PlayerService, log *zap.Logger) *PlayerHandler {
	return &PlayerHandler{
		service: service,
		log:     log.With(zap.String("handler", "player")),
	}
}

// GetPlayers handles GET /api/players
func (h *PlayerHandler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	players, err := h.service.GetAll(r.Context(), page, perPage)
	if err != nil {
		h.handleServiceError(w, err, "get players")
		return
	}

	utils.ResponseSuccess(w, "Players retrieved successfully", players)
}

// GetPlayerByID handles GET /api/players/{id}
func (h *PlayerHandler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid player ID", nil)
		return
	}

	player, err := h.service.GetByID(r.Context(), playerID)
	if err != nil {
		h.handleServiceError(w, err, "get player")
		return
	}

	utils.ResponseSuccess(w, "Player retrieved successfully", player)
}

// CreatePlayer handles POST /api/players (coach or admin)
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	player, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create player")
		return
	}

	utils.ResponseCreated(w, "Player created successfully", player)
}

// UpdatePlayer handles PATCH /api/players/{id} (coach or admin)
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid player ID", nil)
		return
	}

	var req request.PlayerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	player, err := h.service.Update(r.Context(), playerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update player")
		return
	}

	utils.ResponseSuccess(w, "Player updated successfully", player)
}

// DeletePlayer handles DELETE /api/players/{id} (coach or admin)
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid player ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), playerID); err != nil {
		h.handleServiceError(w, err, "delete player")
		return
	}

	utils.ResponseSuccess(w, "Player deleted successfully", nil)
}

func (h *PlayerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already"):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
