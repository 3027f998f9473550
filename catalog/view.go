package catalog

import (
	"sort"
	"strings"

	"github.com/gofish-bot/appstore/models"
)

// View holds the loaded catalog and the active filters, and keeps the
// visible subset up to date. It is not safe for concurrent use; callers
// mutate it from a single goroutine.
type View struct {
	records []models.App
	facets  map[models.FacetKind][]string
	filter  models.FilterState
	visible []models.App
}

func NewView() *View {
	return &View{facets: map[models.FacetKind][]string{}}
}

// SetRecords replaces the catalog. Filter selections are kept, including
// values that no longer occur in the new list.
func (v *View) SetRecords(apps []models.App) {
	records := make([]models.App, len(apps))
	copy(records, apps)
	less := nameOrder()
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i].Name, records[j].Name)
	})

	v.records = records
	for _, kind := range models.FacetKinds {
		v.facets[kind] = FacetValues(records, kind)
	}
	v.refresh()
}

// ToggleFacet flips a facet value and reports whether it is now selected.
func (v *View) ToggleFacet(kind models.FacetKind, value string) bool {
	on := v.filter.Toggle(kind, value)
	v.refresh()
	return on
}

func (v *View) SelectFacet(kind models.FacetKind, value string, on bool) {
	v.filter.Set(kind, value, on)
	v.refresh()
}

func (v *View) SetSearch(text string) {
	v.filter.Search = text
	v.refresh()
}

func (v *View) Search() string { return v.filter.Search }

// Visible returns the records passing every active filter, in name order.
func (v *View) Visible() []models.App { return v.visible }

// Records returns the full sorted catalog.
func (v *View) Records() []models.App { return v.records }

// Facets returns the distinct non-blank values of a facet, sorted.
func (v *View) Facets(kind models.FacetKind) []string { return v.facets[kind] }

func (v *View) IsSelected(kind models.FacetKind, value string) bool {
	return v.filter.IsSelected(kind, value)
}

// Selected returns the selected values of a facet, sorted.
func (v *View) Selected(kind models.FacetKind) []string {
	values := v.filter.Selected(kind)
	less := nameOrder()
	sort.Slice(values, func(i, j int) bool { return less(values[i], values[j]) })
	return values
}

// Find looks an app up by exact name, then case-insensitively.
func (v *View) Find(name string) (models.App, bool) {
	for _, app := range v.records {
		if app.Name == name {
			return app, true
		}
	}
	for _, app := range v.records {
		if strings.EqualFold(app.Name, name) {
			return app, true
		}
	}
	return models.App{}, false
}

func (v *View) refresh() {
	v.visible = DeriveVisible(v.records, &v.filter)
}

// DeriveVisible applies the search and facet filters to records, keeping
// their order. The search is a case-insensitive substring match on Name; a
// facet passes when nothing is selected for it or the record value is
// selected exactly.
func DeriveVisible(records []models.App, filter *models.FilterState) []models.App {
	query := strings.ToLower(strings.TrimSpace(filter.Search))

	visible := []models.App{}
	for _, app := range records {
		if query != "" && !strings.Contains(strings.ToLower(app.Name), query) {
			continue
		}
		if !filter.Allows(models.Platform, app.Platform) ||
			!filter.Allows(models.Genre, app.Genre) ||
			!filter.Allows(models.Type, app.Type) {
			continue
		}
		visible = append(visible, app)
	}
	return visible
}

// FacetValues returns the distinct non-blank values of a facet, sorted.
func FacetValues(records []models.App, kind models.FacetKind) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, app := range records {
		value := app.Facet(kind)
		if strings.TrimSpace(value) == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	less := nameOrder()
	sort.Slice(values, func(i, j int) bool { return less(values[i], values[j]) })
	return values
}

// FacetCounts counts records per facet value, blank values excluded.
func FacetCounts(records []models.App, kind models.FacetKind) map[string]int {
	counts := map[string]int{}
	for _, app := range records {
		if value := app.Facet(kind); strings.TrimSpace(value) != "" {
			counts[value]++
		}
	}
	return counts
}
