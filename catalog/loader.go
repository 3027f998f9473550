package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gofish-bot/appstore/log"
	"github.com/gofish-bot/appstore/models"
)

// Source produces a fresh list of catalog records.
type Source interface {
	Load(ctx context.Context) ([]models.App, error)
}

// Loader fetches the remote manifest.
type Loader struct {
	URL    string
	Client *http.Client

	// Now stamps the cache-busting parameter. Defaults to time.Now.
	Now func() time.Time
}

func NewLoader(url string, client *http.Client) *Loader {
	return &Loader{URL: url, Client: client, Now: time.Now}
}

// Load fetches, sanitizes and parses the manifest. Image and description
// links are rewritten to raw-content links; descriptions are not fetched.
func (l *Loader) Load(ctx context.Context) ([]models.App, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	url := CacheBust(l.URL, now())

	log.G(ctx).Debugf("Loading manifest: %s", url)
	body, err := get(ctx, l.Client, url)
	if err != nil {
		return nil, err
	}

	apps, err := ParseManifest(body)
	if err != nil {
		return nil, err
	}
	log.G(ctx).Debugf("Loaded %d apps from %s of manifest", len(apps), humanize.Bytes(uint64(len(body))))
	return apps, nil
}

var controlReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Sanitize collapses literal CR/LF sequences to single spaces. The upstream
// manifest carries unescaped line breaks inside string values.
func Sanitize(payload string) string {
	return controlReplacer.Replace(payload)
}

// ParseManifest decodes a manifest payload into normalized records.
func ParseManifest(payload []byte) ([]models.App, error) {
	var apps []models.App
	if err := json.Unmarshal([]byte(Sanitize(string(payload))), &apps); err != nil {
		return nil, &ParseError{Err: err}
	}
	for i := range apps {
		apps[i] = normalize(apps[i])
	}
	return apps, nil
}

func normalize(app models.App) models.App {
	if strings.TrimSpace(app.Name) == "" {
		app.Name = models.UnknownName
	}
	app.Image = RawLink(app.Image)
	if strings.TrimSpace(app.DescriptionRef) != "" {
		app.DescriptionRef = RawLink(app.DescriptionRef)
	}
	return app
}
