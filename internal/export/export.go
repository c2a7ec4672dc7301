package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"sensorika-scraper/internal/models"
)

// WriteNDJSON writes any JSON-marshalable items as NDJSON to w.
func WriteNDJSON(w io.Writer, items []any) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}

// WriteStudentsCSV writes summary records with a fixed header row. Optional
// fields render as empty cells.
func WriteStudentsCSV(w io.Writer, students []models.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "description", "url", "image_url"}); err != nil {
		return err
	}
	for _, s := range students {
		row := []string{intCell(s.ID), s.Name, s.Description, strCell(s.URL), strCell(s.ImageURL)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNewsCSV writes news listing entries with a fixed header row.
func WriteNewsCSV(w io.Writer, items []models.NewsItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "url", "image_url"}); err != nil {
		return err
	}
	for _, n := range items {
		row := []string{intCell(n.ID), n.Title, n.URL, strCell(n.ImageURL)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
