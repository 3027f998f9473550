package catalog

import (
	"testing"
	"time"
)

func TestRawLink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Rewrites file view link",
			in:   "https://github.com/user/repo/blob/main/icons/app.png",
			want: "https://raw.githubusercontent.com/user/repo/main/icons/app.png",
		},
		{
			name: "Leaves raw link alone",
			in:   "https://raw.githubusercontent.com/user/repo/main/desc.json",
			want: "https://raw.githubusercontent.com/user/repo/main/desc.json",
		},
		{
			name: "Needs the blob segment",
			in:   "https://github.com/user/repo/tree/main/icons",
			want: "https://github.com/user/repo/tree/main/icons",
		},
		{
			name: "Needs the github domain",
			in:   "https://example.com/user/repo/blob/main/app.png",
			want: "https://example.com/user/repo/blob/main/app.png",
		},
		{
			name: "Empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RawLink(tt.in); got != tt.want {
				t.Errorf("RawLink() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCacheBust(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)
	ticks := "638397614450000006"

	tests := []struct {
		url  string
		want string
	}{
		{url: "https://host/apps.json", want: "https://host/apps.json?t=" + ticks},
		{url: "https://host/apps.json?ref=main", want: "https://host/apps.json?ref=main&t=" + ticks},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := CacheBust(tt.url, now); got != tt.want {
				t.Errorf("CacheBust() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicks_UnixEpoch(t *testing.T) {
	if got := Ticks(time.Unix(0, 0)); got != ticksEpochOffset {
		t.Errorf("Ticks(epoch) = %d, want %d", got, int64(ticksEpochOffset))
	}
}
