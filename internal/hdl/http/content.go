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
)

func (h *Handler) RegisterContentRoutes() {
	h.Router.Route(
		"/api/admin/sections", func(r chi.Router) {
			r.Use(mid.Auth(h.au))

			r.Get("/", h.listSections)
			r.Post("/", h.createSection)
			r.Get("/{id}", h.getSection)
			r.Put("/{id}", h.updateSection)
			r.Delete("/{id}", h.deleteSection)
		},
	)

	h.Router.Route(
		"/api/admin/videos", func(r chi.Router) {
			r.Use(mid.Auth(h.au))

			r.Post("/", h.createVideo)
			r.Put("/{id}", h.updateVideo)
			r.Delete("/{id}", h.deleteVideo)
		},
	)
}

// listSections godoc
//
//	@Summary	List sections with their videos
//	@Tags		Content
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(20)
//	@Param		is_active	query		bool	false	"Filter by active flag"
//	@Param		category	query		string	false	"Filter by category"
//	@Success	200			{object}	dto.PaginatedSectionResponse
//	@Failure	500			{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/admin/sections [get]
func (h *Handler) listSections(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePagination(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListSections(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// getSection godoc
//
//	@Summary	Get a section with its videos
//	@Tags		Content
//	@Produce	json
//	@Param		id	path		string	true	"Section UUID"
//	@Success	200	{object}	utils.Response{data=models.Section}
//	@Failure	400	{object}	utils.ErrorResponse
//	@Failure	404	{object}	utils.ErrorResponse	"not found"
//	@Failure	500	{object}	utils.ErrorResponse
//	@Router		/api/admin/sections/{id} [get]
func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.GetSection(r.Context(), id)
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

// createSection godoc
//
//	@Summary	Create a section
//	@Tags		Content
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateSectionRequest	true	"Section payload"
//	@Success	201		{object}	utils.Response{data=dto.CreateIDResponse}
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	500		{object}	utils.ErrorResponse
//	@Router		/api/admin/sections [post]
func (h *Handler) createSection(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateSectionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateSection(r.Context(), req)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// updateSection godoc
//
//	@Summary	Update a section
//	@Tags		Content
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"Section UUID"
//	@Param		body	body	dto.UpdateSectionRequest	true	"New section payload"
//	@Success	200		"Updated"
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	404		{object}	utils.ErrorResponse	"not found"
//	@Failure	500		{object}	utils.ErrorResponse
//	@Router		/api/admin/sections/{id} [put]
func (h *Handler) updateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	req := &dto.UpdateSectionRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.UpdateSection(r.Context(), id, req); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// deleteSection godoc
//
//	@Summary	Delete a section and its videos
//	@Tags		Content
//	@Produce	json
//	@Param		id	path	string	true	"Section UUID"
//	@Success	204	"Deleted"
//	@Failure	400	{object}	utils.ErrorResponse
//	@Failure	404	{object}	utils.ErrorResponse	"not found"
//	@Failure	500	{object}	utils.ErrorResponse
//	@Router		/api/admin/sections/{id} [delete]
func (h *Handler) deleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteSection(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

// createVideo godoc
//
//	@Summary	Create a video inside a section
//	@Tags		Content
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateVideoRequest	true	"Video payload"
//	@Success	201		{object}	utils.Response{data=dto.CreateIDResponse}
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	404		{object}	utils.ErrorResponse	"section not found"
//	@Failure	500		{object}	utils.ErrorResponse
//	@Router		/api/admin/videos [post]
func (h *Handler) createVideo(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateVideoRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateVideo(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// updateVideo godoc
//
//	@Summary	Update a video
//	@Tags		Content
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string					true	"Video UUID"
//	@Param		body	body	dto.UpdateVideoRequest	true	"New video payload"
//	@Success	200		"Updated"
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	404		{object}	utils.ErrorResponse	"not found"
//	@Failure	500		{object}	utils.ErrorResponse
//	@Router		/api/admin/videos/{id} [put]
func (h *Handler) updateVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	req := &dto.UpdateVideoRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.UpdateVideo(r.Context(), id, req); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// deleteVideo godoc
//
//	@Summary	Delete a video
//	@Tags		Content
//	@Produce	json
//	@Param		id	path	string	true	"Video UUID"
//	@Success	204	"Deleted"
//	@Failure	400	{object}	utils.ErrorResponse
//	@Failure	404	{object}	utils.ErrorResponse	"not found"
//	@Failure	500	{object}	utils.ErrorResponse
//	@Router		/api/admin/videos/{id} [delete]
func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteVideo(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
