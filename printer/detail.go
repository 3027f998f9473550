package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gofish-bot/appstore/models"
)

// NoDescription is shown when an app has neither an inline nor a fetched
// description.
const NoDescription = "No description available."

// InitialDescription is the text shown before the lazy description arrives.
func InitialDescription(app models.App) string {
	if strings.TrimSpace(app.Description) == "" {
		return NoDescription
	}
	return app.Description
}

type Field struct {
	Label string
	Value string
}

// DetailFields lists the labelled fields of the detail view. Blank facets
// read "Unknown"; emulator platforms, url and image are left out when blank.
func DetailFields(app models.App) []Field {
	fields := []Field{
		{"Genre", orUnknown(app.Genre)},
		{"Type", orUnknown(app.Type)},
		{"Platform", orUnknown(app.Platform)},
	}
	if strings.TrimSpace(app.EmulatorPlatforms) != "" {
		fields = append(fields, Field{"Emulator Platforms", app.EmulatorPlatforms})
	}
	if strings.TrimSpace(app.URL) != "" {
		fields = append(fields, Field{"Url", app.URL})
	}
	if strings.TrimSpace(app.Image) != "" {
		fields = append(fields, Field{"Image", app.Image})
	}
	return fields
}

func orUnknown(s string) string {
	if s == "" {
		return models.UnknownName
	}
	return s
}

// Detail prints the detail view of an app.
func Detail(w io.Writer, app models.App, description string) {
	title := color.New(color.FgGreen, color.Bold).SprintFunc()
	label := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, title(app.Name))
	for _, f := range DetailFields(app) {
		fmt.Fprintf(w, "%s %s\n", label(f.Label+":"), f.Value)
	}
	fmt.Fprintf(w, "\n%s\n", description)
}
