package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/epi-tools/covid-atlas/pkg/adapters"
	"github.com/epi-tools/covid-atlas/pkg/models/api"
	"github.com/epi-tools/covid-atlas/pkg/models/domain"
	"github.com/epi-tools/covid-atlas/pkg/services/explorer"
)

const dateLayout = "2006-01-02"

type Handler struct {
	explorer explorer.Explorer
}

func NewHandler(exp explorer.Explorer) *Handler {
	return &Handler{explorer: exp}
}

func (h *Handler) ListContinents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	continents, err := h.explorer.ListContinents(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list continents")
		http.Error(w, "failed to load dataset", http.StatusInternalServerError)
		return
	}

	response := make([]api.Continent, 0, len(continents))
	for _, name := range continents {
		response = append(response, api.Continent{Name: name})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	continent := chi.URLParam(r, "continent")

	countries, err := h.explorer.ListCountries(ctx, continent)
	if err != nil {
		logger.Error().Err(err).Str("continent", continent).Msg("failed to list countries")
		http.Error(w, "failed to load dataset", http.StatusInternalServerError)
		return
	}

	response := make([]api.Country, 0, len(countries))
	for _, name := range countries {
		response = append(response, api.Country{Name: name})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetDateBounds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	continent := chi.URLParam(r, "continent")
	country := chi.URLParam(r, "country")

	bounds, err := h.explorer.DateBounds(ctx, continent, country)
	if err != nil {
		logger.Error().Err(err).Str("country", country).Msg("failed to get date bounds")
		http.Error(w, "failed to load dataset", http.StatusInternalServerError)
		return
	}
	if bounds == nil {
		http.Error(w, "no data for selection", http.StatusNotFound)
		return
	}

	writeJSON(w, logger, api.DateBounds{Start: bounds.Start, End: bounds.End})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	continent := chi.URLParam(r, "continent")
	country := chi.URLParam(r, "country")

	dateRange, ok := parseRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if !ok {
		http.Error(w, "start and end must be YYYY-MM-DD dates", http.StatusBadRequest)
		return
	}

	spec := domain.FilterSpec{Continent: continent, Country: country, Range: dateRange}
	result, err := h.explorer.BuildDashboard(ctx, spec)
	if err != nil {
		logger.Error().Err(err).Str("country", country).Msg("failed to build dashboard")
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapDashboardDomainToApi(*result))
}

// parseRange turns the start/end query params into an optional range. A
// single or missing bound skips the date filter; malformed syntax is the
// only rejection.
func parseRange(start, end string) (*domain.DateRange, bool) {
	if start == "" || end == "" {
		return nil, true
	}
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, false
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, false
	}
	return &domain.DateRange{Start: startDate, End: endDate}, true
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
