package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sensorika-scraper/internal/models"
)

// Fallback strings substituted when a card lacks the corresponding element.
const (
	fallbackName        = "name unknown"
	fallbackDescription = "no description"
	fallbackTitle       = "no title"
)

// IDFromURL derives the numeric record id from a page URL: the last path
// segment up to the first hyphen, parsed as an integer. Anything that does
// not parse degrades to nil, never an error.
func IDFromURL(rawURL string) *int {
	seg := rawURL
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.Index(seg, "-"); i >= 0 {
		seg = seg[:i]
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return nil
	}
	return &n
}

// ParseCard converts one short-item card into a summary record. Pure: no
// I/O, deterministic for the same node content. Missing sub-elements degrade
// to nil or fallback strings rather than failing the record.
func ParseCard(item *goquery.Selection, baseURL string) models.Student {
	student := models.Student{
		Name:        fallbackName,
		Description: fallbackDescription,
	}

	link := item.Find("a.short-link").First()
	if href, ok := link.Attr("href"); ok {
		student.URL = &href
		student.ID = IDFromURL(href)
	}

	if title := item.Find("div.short-title").First(); title.Length() > 0 {
		student.Name = strings.TrimSpace(title.Text())
	}
	if desc := item.Find("div.short-desc").First(); desc.Length() > 0 {
		student.Description = strings.TrimSpace(desc.Text())
	}

	if src, ok := item.Find("img").First().Attr("src"); ok && src != "" {
		abs := baseURL + src
		student.ImageURL = &abs
	}

	return student
}
