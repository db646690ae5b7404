package output

import (
	"encoding/json"
	"io"

	"github.com/Alain-L/cookielog/analysis"
)

// ResultJSON is the --json document.
type ResultJSON struct {
	Date     string   `json:"date"`
	MaxCount int      `json:"max_count"`
	Cookies  []string `json:"cookies"`
}

// ExportJSON writes res as an indented JSON document. Cookies is always
// an array, never null.
func ExportJSON(w io.Writer, date analysis.Date, res analysis.Result) error {
	doc := ResultJSON{
		Date:     date.String(),
		MaxCount: res.MaxCount,
		Cookies:  res.Cookies,
	}
	if doc.Cookies == nil {
		doc.Cookies = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
