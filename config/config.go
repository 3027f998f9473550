package config

import (
	"net/http"
	"time"

	"github.com/gobuffalo/envy"
	"github.com/pkg/errors"
)

const (
	// DefaultManifestURL is the catalog the store was built around.
	DefaultManifestURL = "https://raw.githubusercontent.com/Koriebonx98/AppStore-/main/Default.json"

	EnvManifestURL = "APPSTORE_MANIFEST_URL"
	EnvTimeout     = "APPSTORE_TIMEOUT"
)

type Config struct {
	ManifestURL string
	// Timeout bounds each HTTP request. Zero leaves the client default (none).
	Timeout time.Duration
	Verbose bool
}

// FromEnv reads the configuration from the environment (and a .env file, if
// present), falling back to the defaults.
func FromEnv() (Config, error) {
	c := Config{
		ManifestURL: envy.Get(EnvManifestURL, DefaultManifestURL),
	}

	if raw := envy.Get(EnvTimeout, ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return c, errors.Wrapf(err, "invalid %s", EnvTimeout)
		}
		c.Timeout = d
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.ManifestURL == "" {
		return errors.New("manifest url must not be empty")
	}
	if c.Timeout < 0 {
		return errors.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// HTTPClient returns the client used for the manifest and description fetches.
func (c Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.Timeout}
}
