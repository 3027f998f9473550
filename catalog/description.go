package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gofish-bot/appstore/log"
)

// FetchDescription loads the long description behind ref.
//
// A JSON object with a non-blank "description" string yields that string;
// any other body is returned as-is. When ref is blank or the fetch fails,
// current is returned so the caller keeps showing what it had.
func FetchDescription(ctx context.Context, client *http.Client, ref, current string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return current
	}
	url := CacheBust(RawLink(ref), time.Now())

	body, err := get(ctx, client, url)
	if err != nil {
		log.G(ctx).Debugf("Keeping description, fetch failed: %v", err)
		return current
	}
	log.G(ctx).Debugf("Fetched description: %s", humanize.Bytes(uint64(len(body))))
	return extractDescription(string(body))
}

func extractDescription(body string) string {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return body
	}
	raw, ok := doc["description"]
	if !ok {
		return body
	}
	var desc string
	if err := json.Unmarshal(raw, &desc); err != nil || strings.TrimSpace(desc) == "" {
		return body
	}
	return desc
}
