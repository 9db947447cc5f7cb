package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/dshills/rigedit/internal/action"
)

// catalogJSON renders the catalog as
//
//	{"literals":[{"text":..,"segment":..}],"prefixes":[{"text":..,"segment":..,"grammar":..}]}
//
// in claim order.
func catalogJSON(c *action.Catalog) (string, error) {
	doc := `{"literals":[],"prefixes":[]}`
	var err error
	for _, e := range c.Entries() {
		item := map[string]string{"text": e.Text, "segment": e.Segment}
		key := "literals.-1"
		if e.Kind == action.KindPrefix {
			item["grammar"] = string(e.Grammar)
			key = "prefixes.-1"
		}
		doc, err = sjson.Set(doc, key, item)
		if err != nil {
			return "", fmt.Errorf("encoding %q: %w", e.Text, err)
		}
	}
	return doc, nil
}

// writeCatalog writes the catalog in the named format, "json" or "text".
// The text format is one string per line, literals first, sorted, with
// prefixes shown with their trailing blank replaced by "<arg>".
func writeCatalog(w io.Writer, c *action.Catalog, format string) error {
	switch format {
	case "json":
		doc, err := catalogJSON(c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, doc)
		return err
	case "text":
		var b strings.Builder
		for _, s := range c.Literals() {
			b.WriteString(s)
			b.WriteByte('\n')
		}
		for _, s := range c.Prefixes() {
			b.WriteString(s)
			b.WriteString("<arg>\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("unknown catalog format %q (must be json or text)", format)
	}
}
