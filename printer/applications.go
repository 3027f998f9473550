package printer

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/gofish-bot/appstore/models"
)

func newTable(w io.Writer, headers ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(headers...)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(w)
	return tbl
}

// Table prints the apps one per row.
func Table(w io.Writer, applications []models.App) {
	tbl := newTable(w, "Name", "Platform", "Genre", "Type")
	for _, app := range applications {
		tbl.AddRow(app.Name, app.Platform, app.Genre, app.Type)
	}
	tbl.Print()
}

// Summary prints how many of the catalog's apps are shown.
func Summary(w io.Writer, shown, total int) {
	fmt.Fprintf(w, "%s of %s apps\n", humanize.Comma(int64(shown)), humanize.Comma(int64(total)))
}

// Facets prints the values of one facet with their app counts. Selected
// values are marked with a star.
func Facets(w io.Writer, kind models.FacetKind, values []string, counts map[string]int, selected func(string) bool) {
	tbl := newTable(w, "", kind.String(), "Apps")
	for _, value := range values {
		mark := ""
		if selected != nil && selected(value) {
			mark = "*"
		}
		tbl.AddRow(mark, value, humanize.Comma(int64(counts[value])))
	}
	tbl.Print()
}
