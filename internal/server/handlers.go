package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cso-genova/casa-listing-explorer/internal"
	"github.com/cso-genova/casa-listing-explorer/internal/listing"
	"github.com/cso-genova/casa-listing-explorer/internal/log"
	"github.com/cso-genova/casa-listing-explorer/internal/util"
)

type handler struct {
	config *util.Config
	loader ListingLoader
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	table, err := h.loader.Load(r.Context(), h.config.Database.Value, h.config.Token.Value)
	if err != nil {
		log.GetLogger().WithError(err).Error("unable to fetch listings")
		renderMessage(w, statusFor(err), "error", fmt.Sprintf("Unable to fetch data: %v", err))
		return
	}

	if len(table) == 0 {
		renderMessage(w, http.StatusOK, "warning", "No listings were returned from the Casa Genova view.")
		return
	}

	ranges := listing.ObservedRanges(table)
	spec := parseFilterSpec(r.URL.Query(), ranges)
	filtered := listing.Filter(table, spec)
	summary := listing.Summarize(table)

	page := buildPage(summary, ranges, spec, filtered, r.URL.Query().Encode())
	renderDashboard(w, page)
}

func (h *handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	table, err := h.loader.Load(r.Context(), h.config.Database.Value, h.config.Token.Value)
	if err != nil {
		log.GetLogger().WithError(err).Error("unable to fetch listings for export")
		http.Error(w, fmt.Sprintf("Unable to fetch data: %v", err), statusFor(err))
		return
	}

	spec := parseFilterSpec(r.URL.Query(), listing.ObservedRanges(table))
	filtered := listing.Filter(table, spec)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="casa_genova_listings.csv"`)
	if err := listing.WriteCSV(w, filtered); err != nil {
		log.GetLogger().WithError(err).Error("csv export failed")
	}
}

func statusFor(err error) int {
	if errors.Is(err, &internal.ConfigError{}) {
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}

// parseFilterSpec reads the filter controls from query parameters.
// Absent parameters fall back to the full observed range and to an
// empty room selection, which filters nothing.
func parseFilterSpec(q url.Values, ranges listing.Ranges) listing.FilterSpec {
	spec := listing.FilterSpec{
		PriceMin: ranges.PriceMin,
		PriceMax: ranges.PriceMax,
		SizeMin:  ranges.SizeMin,
		SizeMax:  ranges.SizeMax,
	}

	for _, s := range q["rooms"] {
		if n, err := strconv.Atoi(s); err == nil {
			spec.Rooms = append(spec.Rooms, n)
		}
	}

	spec.PriceMin = floatParam(q, "price_min", spec.PriceMin)
	spec.PriceMax = floatParam(q, "price_max", spec.PriceMax)
	spec.SizeMin = floatParam(q, "size_min", spec.SizeMin)
	spec.SizeMax = floatParam(q, "size_max", spec.SizeMax)

	return spec
}

func floatParam(q url.Values, name string, fallback float64) float64 {
	s := q.Get(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func buildPage(summary listing.Summary, ranges listing.Ranges, spec listing.FilterSpec, filtered listing.Table, rawQuery string) *dashboardPage {
	page := &dashboardPage{
		Database:      listing.View,
		Count:         summary.Count,
		AvgPrice:      formatEUR(summary.AvgPrice),
		AvgPricePerMq: formatEUR(summary.AvgPricePerMq),
		PriceMin:      formatPlain(ranges.PriceMin),
		PriceMax:      formatPlain(ranges.PriceMax),
		SizeMin:       formatPlain(ranges.SizeMin),
		SizeMax:       formatPlain(ranges.SizeMax),
		SpecPriceMin:  formatPlain(spec.PriceMin),
		SpecPriceMax:  formatPlain(spec.PriceMax),
		SpecSizeMin:   formatPlain(spec.SizeMin),
		SpecSizeMax:   formatPlain(spec.SizeMax),
		FilteredCount: len(filtered),
		CSVQuery:      template.URL(rawQuery),
	}

	selected := make(map[int]bool, len(spec.Rooms))
	for _, r := range spec.Rooms {
		selected[r] = true
	}
	for _, opt := range ranges.RoomOptions {
		page.Rooms = append(page.Rooms, roomOption{
			Value: opt,
			// no selection at all shows every option checked, matching
			// the empty-set-filters-nothing policy
			Checked: len(spec.Rooms) == 0 || selected[opt],
		})
	}

	for _, l := range filtered {
		page.Listings = append(page.Listings, listingRow{
			Name:        l.Name,
			URL:         l.URL,
			Description: l.Description,
			Rooms:       formatCount(l.NumberOfRooms),
			Price:       formatOptionalEUR(l.PriceValueEUR),
			Size:        formatOptional(l.SizeMq),
			PricePerMq:  formatOptionalEUR(l.PricePerMq),
		})
	}

	return page
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatEUR(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("€%.0f", v)
}

func formatOptionalEUR(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("€%.0f", *v)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.0f", *v)
}

func formatCount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

func renderDashboard(w http.ResponseWriter, page *dashboardPage) {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		log.GetLogger().WithError(err).Error("dashboard render failed")
		http.Error(w, "Internal rendering error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func renderMessage(w http.ResponseWriter, status int, kind, text string) {
	var buf bytes.Buffer
	err := messageTemplate.Execute(&buf, map[string]string{"Kind": kind, "Text": text})
	if err != nil {
		http.Error(w, text, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
