package views

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-views/pkg/adapters"
	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/query"
	"github.com/de-tools/report-views/pkg/store/viewstate"
)

const (
	maxActionBytes = 1 << 20
	// maxOffset is ten thousand years of days, past which date math can overflow.
	maxOffset = 10000 * 366

	errOffsetOutOfRange = "invalid 'offset'. The window must fall within years 0 to 9999"
)

// Service is what the handler needs from the reporting service.
type Service interface {
	Range(g domain.Granularity) domain.DateRange
	ComputeRange(g domain.Granularity, offset int) domain.DateRange
	Months() domain.MonthIndex
	Month(key string) (domain.MonthBucket, bool)
	Store() viewstate.Store
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetRange(w http.ResponseWriter, r *http.Request) {
	g := granularityParam(r)
	rng := h.svc.Range(g)

	writeJSON(w, r, adapters.MapDomainRangeToApiRange(g, rng))
}

func (h *Handler) ComputeRange(w http.ResponseWriter, r *http.Request) {
	g := granularityParam(r)

	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		http.Error(w, "invalid 'offset'. Expected a non-negative integer", http.StatusBadRequest)
		return
	}

	if offset > maxOffset {
		http.Error(w, errOffsetOutOfRange, http.StatusBadRequest)
		return
	}

	rng := h.svc.ComputeRange(g, offset)
	if !encodable(rng.StartDate) || !encodable(rng.EndDate) {
		http.Error(w, errOffsetOutOfRange, http.StatusBadRequest)
		return
	}
	writeJSON(w, r, adapters.MapDomainRangeToApiComputedRange(g, offset, rng))
}

func (h *Handler) ListMonths(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, adapters.MapDomainMonthIndexToApiMonthList(h.svc.Months()))
}

func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "month")

	bucket, ok := h.svc.Month(key)
	if !ok {
		http.Error(w, "month not found", http.StatusNotFound)
		return
	}
	writeJSON(w, r, bucket)
}

func (h *Handler) GetTimestamp(w http.ResponseWriter, r *http.Request) {
	at := time.Now().UTC()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid 'at' timestamp. Expected format: RFC 3339", http.StatusBadRequest)
			return
		}
		at = parsed
	}

	writeJSON(w, r, adapters.MapInstantToApiTimestamp(at))
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.svc.Store().State())
}

func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionBytes))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	action, err := query.DecodeAction(body)
	switch {
	case errors.Is(err, query.ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, r, h.svc.Store().Dispatch(r.Context(), action))
}

func granularityParam(r *http.Request) domain.Granularity {
	return domain.Granularity(strings.ToUpper(chi.URLParam(r, "granularity")))
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

// encodable reports whether t fits the four digit years of RFC 3339.
func encodable(t time.Time) bool {
	year := t.Year()
	return year >= 0 && year <= 9999
}
