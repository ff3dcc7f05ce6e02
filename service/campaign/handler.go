package campaign

import (
	"encoding/json"
	"errors"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/httplib"
	"github.com/QuangTung97/promo-schedule/pkg/util"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"net/http"
	"strconv"
)

// WindowResponse ...
type WindowResponse struct {
	Weekdays  []string `json:"weekdays"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// Response is the JSON form of a campaign
type Response struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	TypeKey   string           `json:"typeKey"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	BudgetMax string           `json:"budgetMax,omitempty"`
	Version   int64            `json:"version"`
	Windows   []WindowResponse `json:"windows"`
}

// ListResponse ...
type ListResponse struct {
	Version   int64      `json:"version"`
	Campaigns []Response `json:"campaigns"`
}

// NewResponse ...
func NewResponse(c model.Campaign) Response {
	in := ToInput(c)
	windows := make([]WindowResponse, 0, len(in.Windows))
	for _, w := range in.Windows {
		windows = append(windows, WindowResponse(w))
	}
	return Response{
		ID:        c.ID,
		Type:      in.Type,
		TypeKey:   c.Type.Key(),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		BudgetMax: in.BudgetMax,
		Version:   c.Version,
		Windows:   windows,
	}
}

// Handler serves the campaign CRUD endpoints
type Handler struct {
	service *Service
}

// NewHandler ...
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register ...
func (h *Handler) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodGet, "/api/v1/campaigns", h.list},
		{http.MethodPost, "/api/v1/campaigns", h.create},
		{http.MethodGet, "/api/v1/campaigns/{id}", h.get},
		{http.MethodPut, "/api/v1/campaigns/{id}", h.update},
		{http.MethodDelete, "/api/v1/campaigns/{id}", h.delete},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if errors.Is(err, ErrCampaignNotFound) {
		httplib.WriteError(ctx, w, http.StatusNotFound, err.Error())
		return
	}
	if fieldErrors := FieldErrors(err); len(fieldErrors) > 0 {
		resp := httplib.ErrorResponse{Message: "invalid campaign"}
		for _, fe := range fieldErrors {
			resp.Fields = append(resp.Fields, httplib.FieldError{
				Field:   fe.Field,
				Message: fe.Message,
			})
		}
		httplib.WriteJSON(ctx, w, http.StatusBadRequest, resp)
		return
	}
	httplib.WriteInternalError(ctx, w, err)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	snapshot := h.service.Snapshot()

	resp := ListResponse{
		Version:   snapshot.Version(),
		Campaigns: make([]Response, 0, snapshot.Len()),
	}
	for _, c := range snapshot.List() {
		resp.Campaigns = append(resp.Campaigns, NewResponse(c))
	}

	data, err := json.Marshal(resp)
	if err != nil {
		httplib.WriteInternalError(ctx, w, err)
		return
	}

	etag := util.ETag(data)
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Collection-Version", strconv.FormatInt(snapshot.Version(), 10))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	httplib.WriteRaw(ctx, w, http.StatusOK, "application/json", data)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, params map[string]string) {
	c, err := h.service.Get(r.Context(), params["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httplib.WriteJSON(r.Context(), w, http.StatusOK, NewResponse(c))
}

func (h *Handler) readInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var in Input
	if err := httplib.ReadJSON(r, &in); err != nil {
		httplib.WriteError(r.Context(), w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return Input{}, false
	}
	return in, true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	in, ok := h.readInput(w, r)
	if !ok {
		return
	}
	c, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httplib.WriteJSON(r.Context(), w, http.StatusCreated, NewResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, params map[string]string) {
	in, ok := h.readInput(w, r)
	if !ok {
		return
	}
	c, err := h.service.Update(r.Context(), params["id"], in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httplib.WriteJSON(r.Context(), w, http.StatusOK, NewResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if err := h.service.Delete(r.Context(), params["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
