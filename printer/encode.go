package printer

import (
	"encoding/json"
	"io"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/gofish-bot/appstore/models"
)

// Formats accepted by Encode.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Encode writes the apps in the given format. JSON keeps the manifest keys.
func Encode(w io.Writer, format string, applications []models.App) error {
	switch format {
	case FormatTable, "":
		Table(w, applications)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(applications), "encoding json")
	case FormatYAML:
		out, err := yaml.Marshal(applications)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(out)
		return err
	}
	return errors.Errorf("unknown format %q, expected table, json or yaml", format)
}
