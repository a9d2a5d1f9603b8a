package search

import (
	"fmt"
	"io"
	"strings"
)

// Render writes results as a numbered list with type badges.
//
// An empty result set for a non-empty query renders the no-results hint
// instead.
func Render(w io.Writer, query string, results []Result) {
	if len(results) == 0 {
		if strings.TrimSpace(query) != "" {
			fmt.Fprintf(w, "No results found for %q\n", query)
			fmt.Fprintln(w, `Try "add employee" or "view teams"`)
		}
		return
	}

	for nth, r := range results {
		badge := strings.ToUpper(string(r.Kind))
		fmt.Fprintf(w, "%2d. [%-8s] %s", nth+1, badge, r.Title)
		if r.Subtitle != "" {
			fmt.Fprintf(w, " (%s)", r.Subtitle)
		}
		fmt.Fprintf(w, "  -> %s\n", r.Path)
	}
}
