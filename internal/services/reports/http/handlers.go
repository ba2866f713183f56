// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"
	"strconv"

	"hourglass/internal/core/timesheet"
	"hourglass/internal/modkit/httpkit"
	perr "hourglass/internal/platform/errors"
	dom "hourglass/internal/services/reports/domain"
)

// ExportIDHeader carries the render id of an export
const ExportIDHeader = "X-Export-ID"

// Register mounts reports endpoints on the given router
func Register(r httpkit.Router, s dom.ServicePort) {
	h := &handlers{svc: s}

	// filter options for the caller
	httpkit.Get(r, "/dropdowns", h.dropDowns)

	// grouped grid and file export
	httpkit.PostJSON[dom.ReportQuery](r, "/grid", h.grid)
	httpkit.PostJSON[dom.ExportRequest](r, "/export", h.export)

	// named queries
	httpkit.PostJSON[dom.ReportQuery](r, "/queries", h.saveQuery)
	httpkit.Delete(r, "/queries/{id}", h.deleteQuery)

	httpkit.Post(r, "/snapshot/refresh", h.refresh)
}

type handlers struct{ svc dom.ServicePort }

func (h *handlers) requester(r *stdhttp.Request) (timesheet.Member, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return timesheet.Member{}, err
	}
	return h.svc.Requester(r.Context(), user)
}

// swagger:route GET /reports/dropdowns Reports reportsDropDowns
// @Summary Filter options, saved queries and the current query
// @Tags Reports
// @Produce json
// @Success 200 {object} domain.DropDowns "ok"
// @Failure 401 {object} http.Envelope "unauthorized"
// @Router /reports/dropdowns [get]
func (h *handlers) dropDowns(r *stdhttp.Request) (any, error) {
	m, err := h.requester(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DropDowns(r.Context(), m)
}

// swagger:route POST /reports/grid Reports reportsGrid
// @Summary Grouped report grid
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.ReportQuery true "Query"
// @Success 200 {object} domain.GridResult "ok"
// @Failure 422 {object} http.Envelope "invalid query"
// @Router /reports/grid [post]
func (h *handlers) grid(r *stdhttp.Request, in dom.ReportQuery) (any, error) {
	m, err := h.requester(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Grid(r.Context(), m, in)
}

// swagger:route POST /reports/export Reports reportsExport
// @Summary Export the grid as a file
// @Tags Reports
// @Accept json
// @Produce application/pdf
// @Param payload body domain.ExportRequest true "Query and file type"
// @Success 200 {file} file "attachment"
// @Router /reports/export [post]
func (h *handlers) export(r *stdhttp.Request, in dom.ExportRequest) (any, error) {
	m, err := h.requester(r)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Export(r.Context(), m, in.ReportQuery, in.FileTypeID)
	if err != nil {
		return nil, err
	}
	resp := httpkit.Attachment(httpkit.File{
		Name:        res.FileName,
		ContentType: res.ContentType,
		Body:        res.Bytes,
	})
	resp.Header = stdhttp.Header{}
	resp.Header.Set(ExportIDHeader, res.RenderID)
	return resp, nil
}

// swagger:route POST /reports/queries Reports reportsSaveQuery
// @Summary Save a named query
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.ReportQuery true "Query with query_name"
// @Success 201 {object} domain.ReportQuery "created"
// @Router /reports/queries [post]
func (h *handlers) saveQuery(r *stdhttp.Request, in dom.ReportQuery) (any, error) {
	m, err := h.requester(r)
	if err != nil {
		return nil, err
	}
	q, err := h.svc.SaveQuery(r.Context(), m, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(q), nil
}

// swagger:route DELETE /reports/queries/{id} Reports reportsDeleteQuery
// @Summary Delete a named query
// @Tags Reports
// @Param id path int true "Query id"
// @Success 204 "deleted"
// @Failure 404 {object} http.Envelope "not found"
// @Router /reports/queries/{id} [delete]
func (h *handlers) deleteQuery(r *stdhttp.Request) (any, error) {
	id, err := strconv.Atoi(httpkit.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return nil, perr.WithField(perr.InvalidArgf("query id must be a positive integer"), "id")
	}
	m, err := h.requester(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteQuery(r.Context(), m, id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /reports/snapshot/refresh Reports reportsRefresh
// @Summary Drop the cached snapshot, admins only
// @Tags Reports
// @Success 204 "refreshed"
// @Failure 403 {object} http.Envelope "forbidden"
// @Router /reports/snapshot/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	m, err := h.requester(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.RefreshSnapshot(r.Context(), m); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
