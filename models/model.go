package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// UnknownName replaces a missing or blank Name.
const UnknownName = "Unknown"

// App is one entry of the catalog manifest.
type App struct {
	Name              string `json:"Name" yaml:"name"`
	URL               string `json:"Url" yaml:"url,omitempty"`
	Image             string `json:"Image" yaml:"image,omitempty"`
	Genre             string `json:"Genre" yaml:"genre,omitempty"`
	Type              string `json:"Type" yaml:"type,omitempty"`
	Platform          string `json:"Platform" yaml:"platform,omitempty"`
	EmulatorPlatforms string `json:"Emulator Platforms" yaml:"emulator_platforms,omitempty"`
	Description       string `json:"Description" yaml:"description,omitempty"`
	DescriptionRef    string `json:"Desc" yaml:"desc,omitempty"`
}

// UnmarshalJSON matches manifest keys exactly. encoding/json would also
// accept "name" or "DESC"; manifest consumers only read the keys as written.
func (a *App) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	targets := map[string]*string{
		"Name":               &a.Name,
		"Url":                &a.URL,
		"Image":              &a.Image,
		"Genre":              &a.Genre,
		"Type":               &a.Type,
		"Platform":           &a.Platform,
		"Emulator Platforms": &a.EmulatorPlatforms,
		"Description":        &a.Description,
		"Desc":               &a.DescriptionRef,
	}
	for key, raw := range fields {
		dst, ok := targets[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
	}
	return nil
}

// Facet returns the value of the given facet field.
func (a App) Facet(kind FacetKind) string {
	switch kind {
	case Platform:
		return a.Platform
	case Genre:
		return a.Genre
	case Type:
		return a.Type
	}
	return ""
}

type FacetKind int

const (
	Platform FacetKind = iota
	Genre
	Type
)

// FacetKinds lists the facets in display order.
var FacetKinds = []FacetKind{Platform, Genre, Type}

func (k FacetKind) String() string {
	switch k {
	case Platform:
		return "platform"
	case Genre:
		return "genre"
	case Type:
		return "type"
	}
	return fmt.Sprintf("facet(%d)", int(k))
}

// ParseFacetKind accepts the facet names case-insensitively.
func ParseFacetKind(s string) (FacetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "platform", "platforms":
		return Platform, nil
	case "genre", "genres":
		return Genre, nil
	case "type", "types":
		return Type, nil
	}
	return 0, errors.Errorf("unknown facet %q, expected platform, genre or type", s)
}

// FilterState holds the selected facet values and the free-text search.
// The zero value selects nothing and matches everything.
type FilterState struct {
	Search   string
	selected map[FacetKind]map[string]struct{}
}

// Set marks value as selected (on) or not for the facet kind.
func (f *FilterState) Set(kind FacetKind, value string, on bool) {
	if on {
		if f.selected == nil {
			f.selected = map[FacetKind]map[string]struct{}{}
		}
		if f.selected[kind] == nil {
			f.selected[kind] = map[string]struct{}{}
		}
		f.selected[kind][value] = struct{}{}
		return
	}
	delete(f.selected[kind], value)
}

// Toggle flips the selection of value and reports whether it is now selected.
func (f *FilterState) Toggle(kind FacetKind, value string) bool {
	on := !f.IsSelected(kind, value)
	f.Set(kind, value, on)
	return on
}

func (f *FilterState) IsSelected(kind FacetKind, value string) bool {
	_, ok := f.selected[kind][value]
	return ok
}

// Selected returns the selected values of a facet in no particular order.
func (f *FilterState) Selected(kind FacetKind) []string {
	values := make([]string, 0, len(f.selected[kind]))
	for v := range f.selected[kind] {
		values = append(values, v)
	}
	return values
}

// Allows reports whether a record value passes the facet: an empty selection
// lets everything through, otherwise the value must be selected exactly.
func (f *FilterState) Allows(kind FacetKind, value string) bool {
	if len(f.selected[kind]) == 0 {
		return true
	}
	return f.IsSelected(kind, value)
}
