package http

import (
	"net/http"

	"github.com/veracourse/portal/internal/hdl"
	mid "github.com/veracourse/portal/internal/hdl/http/middleware"
	"github.com/veracourse/portal/internal/hdl/http/utils"
)

func (h *Handler) RegisterAuditRoutes() {
	h.Router.With(mid.Auth(h.au)).Get("/api/admin/audit-events", h.listAuditEvents)
}

// listAuditEvents godoc
//
//	@Summary	List security audit events
//	@Tags		Audit
//	@Produce	json
//	@Param		page		query		int		false	"Page number"	default(1)
//	@Param		size		query		int		false	"Page size"		default(20)
//	@Param		severity	query		string	false	"Filter by severity"
//	@Param		kind		query		string	false	"Filter by event kind"
//	@Param		subject_id	query		string	false	"Filter by subject access code UUID"
//	@Success	200			{object}	dto.PaginatedAuditEventResponse
//	@Failure	500			{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/admin/audit-events [get]
func (h *Handler) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePagination(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListAuditEvents(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}
