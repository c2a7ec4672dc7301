package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sensorika-scraper/internal/models"
)

// Section anchors in the home-page markup. The news heading is matched
// exactly; the freelancer marker is a text search and therefore brittle if
// the phrase ever appears elsewhere on the page.
const (
	newsSectionTitle = "YANGILIKLAR"
	freelancerMarker = "BIZ FRILANSINGDA DAROMAD QILYAPMIZ!"
)

// ExtractStudents collects every card beneath every short-items group on the
// home page. Groups are not de-duplicated: a student present in two groups
// appears twice.
func ExtractStudents(doc *goquery.Document, baseURL string) ([]models.Student, error) {
	var students []models.Student
	doc.Find("div.short-items").Each(func(_ int, group *goquery.Selection) {
		group.Find("div.short-item").Each(func(_ int, item *goquery.Selection) {
			students = append(students, ParseCard(item, baseURL))
		})
	})
	if len(students) == 0 {
		return nil, errRecordsEmpty("students")
	}
	return students, nil
}

// ExtractNews locates the news column by its exact heading text, then
// collects its top-item anchors in document order.
func ExtractNews(doc *goquery.Document, baseURL string) ([]models.NewsItem, error) {
	heading := doc.Find("div.sect-title").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Text() == newsSectionTitle
	}).First()
	if heading.Length() == 0 {
		return nil, errSectionNotFound("news")
	}

	var items []models.NewsItem
	heading.Closest("div.sect-col").Find("a.top-item").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		item := models.NewsItem{
			ID:    IDFromURL(href),
			Title: fallbackTitle,
			URL:   href,
		}
		if title := a.Find("div.top-title").First(); title.Length() > 0 {
			item.Title = strings.TrimSpace(title.Text())
		}
		if src, ok := a.Find("img").First().Attr("src"); ok && src != "" {
			abs := baseURL + src
			item.ImageURL = &abs
		}
		items = append(items, item)
	})
	if len(items) == 0 {
		return nil, errRecordsEmpty("news")
	}
	return items, nil
}

// ExtractFreelancers finds the first div whose text contains the freelancer
// marker phrase, walks up to its enclosing sect container and collects the
// cards inside it.
func ExtractFreelancers(doc *goquery.Document, baseURL string) ([]models.Student, error) {
	var header *goquery.Selection
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), freelancerMarker) {
			header = s
			return false
		}
		return true
	})
	if header == nil {
		return nil, errSectionNotFound("freelancer")
	}

	// The first matching div in document order is typically the section
	// container itself, since an ancestor's text includes its descendants'.
	// Closest therefore has to consider the node itself too.
	section := header.Closest("div.sect")
	if section.Length() == 0 {
		return nil, errSectionNotFound("freelancer")
	}

	var freelancers []models.Student
	section.Find("div.short-item").Each(func(_ int, item *goquery.Selection) {
		freelancers = append(freelancers, ParseCard(item, baseURL))
	})
	if len(freelancers) == 0 {
		return nil, errRecordsEmpty("freelancers")
	}
	return freelancers, nil
}
