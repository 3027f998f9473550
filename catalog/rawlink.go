package catalog

import (
	"strconv"
	"strings"
	"time"
)

const (
	hostDomain = "github.com"
	rawDomain  = "raw.githubusercontent.com"
	blobPath   = "/blob/"
)

// RawLink turns a GitHub "file view" link into its raw-content form.
//
// The rule is textual: when s contains both "github.com" and "/blob/", every
// "github.com" becomes "raw.githubusercontent.com" and every "/blob/" becomes
// "/". Anything else is returned untouched.
func RawLink(s string) string {
	if !strings.Contains(s, hostDomain) || !strings.Contains(s, blobPath) {
		return s
	}
	s = strings.Replace(s, hostDomain, rawDomain, -1)
	return strings.Replace(s, blobPath, "/", -1)
}

// ticksEpochOffset is the number of 100ns ticks between 0001-01-01 and the
// unix epoch.
const ticksEpochOffset = 621355968000000000

// Ticks returns t as 100ns intervals since 0001-01-01 UTC.
func Ticks(t time.Time) int64 {
	return t.UTC().UnixNano()/100 + ticksEpochOffset
}

// CacheBust appends a t=<ticks> query parameter so intermediaries cannot
// serve a stale copy.
func CacheBust(url string, now time.Time) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "t=" + strconv.FormatInt(Ticks(now), 10)
}
