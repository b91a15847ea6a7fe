package http

import (
	"errors"
	"net/http"

	"github.com/veracourse/portal/internal/ctrl"
	"github.com/veracourse/portal/internal/dto"
	"github.com/veracourse/portal/internal/hdl"
	mid "github.com/veracourse/portal/internal/hdl/http/middleware"
	"github.com/veracourse/portal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAccessCodeRoutes() {
	h.Router.Route(
		"/api/admin/access-codes", func(r chi.Router) {
			r.Use(mid.Auth(h.au))

			r.Get("/", h.listAccessCodes)
			r.Post("/", h.createAccessCode)
			r.Get("/{id}", h.getAccessCode)
			r.Put("/{id}", h.updateAccessCode)
			r.Delete("/{id}", h.deleteAccessCode)
			r.Post("/{id}/reset-device", h.resetDevice)
			r.Post("/{id}/activate", h.setAccessCodeActive)
		},
	)
}

func parsePathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return uuid.Nil, false
	}
	return id, true
}

// listAccessCodes godoc
//
//	@Summary	List access codes
//	@Tags		AccessCodes
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(20)
//	@Param		is_active	query		bool	false	"Filter by active flag"
//	@Param		category	query		string	false	"Filter by category"
//	@Param		bound		query		bool	false	"Filter by device binding presence"
//	@Param		search		query		string	false	"Search by name, code or phone"
//	@Success	200			{object}	dto.PaginatedAccessCodeResponse
//	@Failure	500			{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/admin/access-codes [get]
func (h *Handler) listAccessCodes(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePagination(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListAccessCodes(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// createAccessCode godoc
//
//	@Summary		Create an access code
//	@Description	Generates a unique code for the student; the device binding stays empty until the first login
//	@Tags			AccessCodes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateAccessCodeRequest	true	"Student profile"
//	@Success		201		{object}	utils.Response{data=dto.CreateAccessCodeResponse}
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/api/admin/access-codes [post]
func (h *Handler) createAccessCode(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateAccessCodeRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateAccessCode(r.Context(), req)
	if err != nil {
		zap.L().Error("failed to create access code", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// getAccessCode godoc
//
//	@Summary	Get an access code by ID
//	@Tags		AccessCodes
//	@Produce	json
//	@Param		id	path		string	true	"Access code UUID"
//	@Success	200	{object}	utils.Response{data=models.AccessCode}
//	@Failure	400	{object}	utils.ErrorResponse
//	@Failure	404	{object}	utils.ErrorResponse	"not found"
//	@Failure	500	{object}	utils.ErrorResponse
//	@Router		/api/admin/access-codes/{id} [get]
func (h *Handler) getAccessCode(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.GetAccessCode(r.Context(), id)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// updateAccessCode godoc
//
//	@Summary	Update an access code's profile
//	@Tags		AccessCodes
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"Access code UUID"
//	@Param		body	body	dto.UpdateAccessCodeRequest	true	"New profile"
//	@Success	200		"Updated"
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	404		{object}	utils.ErrorResponse	"not found"
//	@Failure	500		{object}	utils.ErrorResponse
//	@Router		/api/admin/access-codes/{id} [put]
func (h *Handler) updateAccessCode(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	req := &dto.UpdateAccessCodeRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.UpdateAccessCode(r.Context(), id, req); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// deleteAccessCode godoc
//
//	@Summary	Delete an access code
//	@Tags		AccessCodes
//	@Produce	json
//	@Param		id	path	string	true	"Access code UUID"
//	@Success	204	"Deleted"
//	@Failure	400	{object}	utils.ErrorResponse
//	@Failure	404	{object}	utils.ErrorResponse	"not found"
//	@Failure	500	{object}	utils.ErrorResponse
//	@Router		/api/admin/access-codes/{id} [delete]
func (h *Handler) deleteAccessCode(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteAccessCode(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// resetDevice godoc
//
//	@Summary		Reset a student's device binding
//	@Description	Clears the bound device, rotates the session token and forces the student to log in again
//	@Tags			AccessCodes
//	@Produce		json
//	@Param			id	path	string	true	"Access code UUID"
//	@Success		200	"Device binding cleared"
//	@Failure		400	{object}	utils.ErrorResponse
//	@Failure		404	{object}	utils.ErrorResponse	"not found"
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/api/admin/access-codes/{id}/reset-device [post]
func (h *Handler) resetDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.ResetDevice(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		zap.L().Error("failed to reset device", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

type setActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// setAccessCodeActive godoc
//
//	@Summary	Enable or disable an access code
//	@Tags		AccessCodes
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string	true	"Access code UUID"
//	@Param		body	body	object	true	"{\"isActive\": bool}"
//	@Success	200		"Flag updated"
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	404		{object}	utils.ErrorResponse	"not found"
//	@Failure	500		{object}	utils.ErrorResponse
//	@Router		/api/admin/access-codes/{id}/activate [post]
func (h *Handler) setAccessCodeActive(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	req := &setActiveRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.SetAccessCodeActive(r.Context(), id, req.IsActive); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}
