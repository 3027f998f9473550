package models

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFacetKind(t *testing.T) {
	tests := []struct {
		in      string
		want    FacetKind
		wantErr bool
	}{
		{in: "platform", want: Platform},
		{in: " Genre ", want: Genre},
		{in: "TYPES", want: Type},
		{in: "emulator", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFacetKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFacetKind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFacetKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterState_Toggle(t *testing.T) {
	var f FilterState

	if !f.Allows(Genre, "Racing") {
		t.Fatal("empty selection should allow every value")
	}
	if on := f.Toggle(Genre, "Racing"); !on {
		t.Fatal("first toggle should select")
	}
	f.Set(Genre, "Puzzle", true)

	got := f.Selected(Genre)
	sort.Strings(got)
	if diff := cmp.Diff([]string{"Puzzle", "Racing"}, got); diff != "" {
		t.Errorf("Selected() mismatch (-want +got):\n%s", diff)
	}
	if f.Allows(Genre, "Shooter") {
		t.Error("unselected value passed a non-empty selection")
	}
	if f.Allows(Genre, "racing") {
		t.Error("selection must match exactly")
	}
	if !f.Allows(Platform, "PC") {
		t.Error("facets are independent")
	}

	if on := f.Toggle(Genre, "Racing"); on {
		t.Fatal("second toggle should deselect")
	}
	f.Set(Genre, "Puzzle", false)
	if len(f.Selected(Genre)) != 0 {
		t.Errorf("Selected() = %v, want empty", f.Selected(Genre))
	}
}

func TestApp_Facet(t *testing.T) {
	a := App{Platform: "PC", Genre: "Racing", Type: "Game"}
	for kind, want := range map[FacetKind]string{Platform: "PC", Genre: "Racing", Type: "Game"} {
		if got := a.Facet(kind); got != want {
			t.Errorf("Facet(%v) = %q, want %q", kind, got, want)
		}
	}
}

func TestFilterState_UnknownKind(t *testing.T) {
	var f FilterState
	odd := FacetKind(3)

	if !f.Allows(odd, "x") {
		t.Error("empty selection should allow every value")
	}
	if on := f.Toggle(odd, "x"); !on {
		t.Fatal("Toggle() should select")
	}
	if f.Allows(odd, "y") || !f.Allows(odd, "x") {
		t.Error("selection on an unlisted kind not applied")
	}
	if !f.Allows(Platform, "y") {
		t.Error("unlisted kind leaked into platform")
	}
}

func TestApp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    App
		wantErr bool
	}{
		{
			name: "Manifest keys",
			in:   `{"Name":"bsnes","Url":"u","Image":"i","Genre":"g","Type":"t","Platform":"p","Emulator Platforms":"SNES","Description":"d","Desc":"r"}`,
			want: App{Name: "bsnes", URL: "u", Image: "i", Genre: "g", Type: "t", Platform: "p", EmulatorPlatforms: "SNES", Description: "d", DescriptionRef: "r"},
		},
		{
			name: "Keys match exactly",
			in:   `{"name":"lower","Name":"Upper","description":"ignored","DESC":"ignored","emulator platforms":"ignored"}`,
			want: App{Name: "Upper"},
		},
		{
			name: "Null and unknown keys",
			in:   `{"Name":null,"Rating":5}`,
			want: App{},
		},
		{
			name:    "Non string value",
			in:      `{"Genre":3}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got App
			err := json.Unmarshal([]byte(tt.in), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), "Genre") {
					t.Errorf("error %q does not name the field", err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApp_MarshalKeepsManifestKeys(t *testing.T) {
	out, err := json.Marshal(App{Name: "bsnes", DescriptionRef: "r"})
	if err != nil {
		t.Fatal(err)
	}
	var back App
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "bsnes" || back.DescriptionRef != "r" {
		t.Errorf("round trip through %s gave %+v", out, back)
	}
}
