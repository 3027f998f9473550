package browser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommand(t *testing.T) {
	const url = "https://example.com/app"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{url}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{url}},
		{goos: "darwin", wantName: "open", wantArgs: []string{url}},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", url}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := Command(tt.goos, url)
			if name != tt.wantName {
				t.Errorf("Command() name = %v, want %v", name, tt.wantName)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("Command() args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_Blank(t *testing.T) {
	if err := Open("  "); err != nil {
		t.Errorf("Open() error = %v", err)
	}
}
