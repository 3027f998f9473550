package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchDescription(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		current string
		want    string
	}{
		{name: "Description field", status: 200, body: `{"description":"Hello"}`, current: "old", want: "Hello"},
		{name: "Plain text", status: 200, body: "plain text", current: "old", want: "plain text"},
		{name: "Object without field", status: 200, body: `{"summary":"x"}`, current: "old", want: `{"summary":"x"}`},
		{name: "Blank description", status: 200, body: `{"description":"  "}`, current: "old", want: `{"description":"  "}`},
		{name: "Non string description", status: 200, body: `{"description":42}`, current: "old", want: `{"description":42}`},
		{name: "Array", status: 200, body: `["a"]`, current: "old", want: `["a"]`},
		{name: "Server error keeps text", status: 500, body: "boom", current: "old", want: "old"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasPrefix(r.URL.RawQuery, "t=") {
					t.Errorf("missing cache-busting parameter: %q", r.URL.RawQuery)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got := FetchDescription(context.Background(), srv.Client(), " "+srv.URL+"/desc.json ", tt.current)
			if got != tt.want {
				t.Errorf("FetchDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchDescription_KeepsTextWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if got := FetchDescription(context.Background(), nil, url, "shown"); got != "shown" {
		t.Errorf("FetchDescription() = %q, want %q", got, "shown")
	}
}

func TestFetchDescription_BlankRef(t *testing.T) {
	if got := FetchDescription(context.Background(), nil, "   ", "shown"); got != "shown" {
		t.Errorf("FetchDescription() = %q, want %q", got, "shown")
	}
}
