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

type PositionHandler struct {
	service usecase.PositionService
	log     *zap.Logger
}

func NewPositionHandler(service usecase.PositionService, log *zap.Logger) *PositionHandler {
	return &PositionHandler{
		service: service,
		log:     log.With(zap.String("handler", "position")),
	}
}

// GetPositions handles GET /api/positions
func (h *PositionHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get positions")
		return
	}

	utils.ResponseSuccess(w, "Positions retrieved successfully", positions)
}

// GetPositionByID handles GET /api/positions/{id}
func (h *PositionHandler) GetPositionByID(w http.ResponseWriter, r *http.Request) {
	positionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid position ID", nil)
		return
	}

	position, err := h.service.GetByID(r.Context(), positionID)
	if err != nil {
		h.handleServiceError(w, err, "get position")
		return
	}

	utils.ResponseSuccess(w, "Position retrieved successfully", position)
}

// CreatePosition handles POST /api/positions (coach or admin)
func (h *PositionHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req request.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	position, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create position")
		return
	}

	utils.ResponseCreated(w, "Position created successfully", position)
}

// UpdatePosition handles PATCH /api/positions/{id} (coach or admin)
func (h *PositionHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid position ID", nil)
		return
	}

	var req request.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	position, err := h.service.Update(r.Context(), positionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update position")
		return
	}

	utils.ResponseSuccess(w, "Position updated successfully", position)
}

// DeletePosition handles DELETE /api/positions/{id} (admin only)
func (h *PositionHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid position ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), positionID); err != nil {
		h.handleServiceError(w, err, "delete position")
		return
	}

	utils.ResponseSuccess(w, "Position deleted successfully", nil)
}

func (h *PositionHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
