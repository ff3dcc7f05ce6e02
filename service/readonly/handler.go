package readonly

import (
	"bytes"
	"errors"
	"github.com/QuangTung97/promo-schedule/pkg/httplib"
	"github.com/QuangTung97/promo-schedule/pkg/otellib"
	"github.com/QuangTung97/promo-schedule/service/present"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"net/http"
	"time"
)

// maxBatchSize of a batch status request
const maxBatchSize = 100

// StatusResponse ...
type StatusResponse struct {
	CampaignID     string     `json:"campaignId"`
	Status         string     `json:"status,omitempty"`
	Label          string     `json:"label,omitempty"`
	OpensAt        *time.Time `json:"opensAt,omitempty"`
	ClosesAt       *time.Time `json:"closesAt,omitempty"`
	NextActivation *time.Time `json:"nextActivation,omitempty"`
	Error          string     `json:"error,omitempty"`
}

// BatchRequest ...
type BatchRequest struct {
	At          string   `json:"at"`
	CampaignIDs []string `json:"campaignIds"`
}

// BatchResponse ...
type BatchResponse struct {
	At       time.Time        `json:"at"`
	Statuses []StatusResponse `json:"statuses"`
}

// Handler serves the evaluation endpoints
type Handler struct {
	service IService
	loc     *time.Location
	now     func() time.Time
}

// NewHandler converts every reference instant into loc before evaluating,
// an offset carried by the request only fixes the instant
func NewHandler(service IService, loc *time.Location) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		now:     time.Now,
	}
}

// Register ...
func (h *Handler) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodGet, "/api/v1/campaigns/{id}/status", h.status},
		{http.MethodGet, "/api/v1/campaigns/{id}/calendar", h.calendar},
		{http.MethodPost, "/api/v1/statuses", h.batch},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func newStatusResponse(p *present.Printer, id string, o Output) StatusResponse {
	resp := StatusResponse{
		CampaignID: id,
		Status:     o.Status.Kind.String(),
		Label:      p.Label(o.Status),
		OpensAt:    optionalTime(o.Status.OpensAt),
		ClosesAt:   optionalTime(o.Status.ClosesAt),
	}
	if o.NextActivation.Valid {
		resp.NextActivation = optionalTime(o.NextActivation.Time)
	}
	return resp
}

// parseAt returns the reference instant in the configured location, now when empty
func (h *Handler) parseAt(s string) (time.Time, error) {
	if s == "" {
		return h.now().In(h.loc), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(h.loc), nil
}

func (h *Handler) evaluateOne(w http.ResponseWriter, r *http.Request, id string, at time.Time) (Output, bool) {
	outputs := h.service.Evaluate(r.Context(), []Input{
		{CampaignID: id, ReqTime: at},
	})
	o := outputs[0]
	if errors.Is(o.Err, ErrCampaignNotFound) {
		httplib.WriteError(r.Context(), w, http.StatusNotFound, o.Err.Error())
		return Output{}, false
	}
	if o.Err != nil {
		httplib.WriteInternalError(r.Context(), w, o.Err)
		return Output{}, false
	}
	return o, true
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request, params map[string]string) {
	at, err := h.parseAt(r.URL.Query().Get("at"))
	if err != nil {
		httplib.WriteError(r.Context(), w, http.StatusBadRequest, "at must be in RFC3339 format")
		return
	}

	id := params["id"]
	o, ok := h.evaluateOne(w, r, id, at)
	if !ok {
		return
	}

	p := present.NewPrinter(r.Header.Get("Accept-Language"))
	httplib.WriteJSON(r.Context(), w, http.StatusOK, newStatusResponse(p, id, o))
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()

	var req BatchRequest
	if err := httplib.ReadJSON(r, &req); err != nil {
		httplib.WriteError(ctx, w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.CampaignIDs) == 0 {
		httplib.WriteError(ctx, w, http.StatusBadRequest, "campaignIds is required")
		return
	}
	if len(req.CampaignIDs) > maxBatchSize {
		httplib.WriteError(ctx, w, http.StatusBadRequest, "too many campaignIds")
		return
	}

	at, err := h.parseAt(req.At)
	if err != nil {
		httplib.WriteError(ctx, w, http.StatusBadRequest, "at must be in RFC3339 format")
		return
	}

	inputs := make([]Input, 0, len(req.CampaignIDs))
	for _, id := range req.CampaignIDs {
		inputs = append(inputs, Input{CampaignID: id, ReqTime: at})
	}
	outputs := h.service.Evaluate(ctx, inputs)

	p := present.NewPrinter(r.Header.Get("Accept-Language"))
	resp := BatchResponse{
		At:       at,
		Statuses: make([]StatusResponse, 0, len(outputs)),
	}
	for i, o := range outputs {
		id := req.CampaignIDs[i]
		switch {
		case errors.Is(o.Err, ErrCampaignNotFound):
			resp.Statuses = append(resp.Statuses, StatusResponse{CampaignID: id, Error: o.Err.Error()})
		case o.Err != nil:
			otellib.WrapError(otellib.WithCampaignID(ctx, id), o.Err)
			resp.Statuses = append(resp.Statuses, StatusResponse{CampaignID: id, Error: "internal error"})
		default:
			resp.Statuses = append(resp.Statuses, newStatusResponse(p, id, o))
		}
	}
	httplib.WriteJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) calendar(w http.ResponseWriter, r *http.Request, params map[string]string) {
	now := h.now().In(h.loc)
	o, ok := h.evaluateOne(w, r, params["id"], now)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := present.Encode(&buf, present.Calendar(o.Campaign, h.loc, now)); err != nil {
		httplib.WriteInternalError(r.Context(), w, err)
		return
	}
	httplib.WriteRaw(r.Context(), w, http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
