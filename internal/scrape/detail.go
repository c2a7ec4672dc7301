package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sensorika-scraper/internal/models"
)

const fallbackDetailName = "unknown"

var keyReplacer = strings.NewReplacer("'", "", "’", "", "ʻ", "", " ", "_")

// normalizeKey turns a label like "O'quv yo'nalishi" into "oquv_yonalishi".
func normalizeKey(label string) string {
	return keyReplacer.Replace(strings.ToLower(strings.TrimSpace(label)))
}

// ExtractStudentDetail pulls the full record out of a student's page. The id
// comes from the caller, it is only echoed back. A page without the fdesc
// description block is rejected outright rather than degraded; the news path
// below is deliberately more forgiving.
func ExtractStudentDetail(doc *goquery.Document, id int, sourceURL, baseURL string) (models.StudentDetail, error) {
	article := doc.Find("article.full").First()
	if article.Length() == 0 {
		return models.StudentDetail{}, errTargetNotFound("student", id)
	}

	detail := models.StudentDetail{
		ID:        id,
		Name:      fallbackDetailName,
		Details:   map[string]string{},
		Images:    []string{},
		SourceURL: sourceURL,
	}
	if h1 := article.Find("h1").First(); h1.Length() > 0 {
		detail.Name = strings.TrimSpace(h1.Text())
	}

	// Only the article's direct child divs count as label/value rows;
	// nested containers are not descended into.
	article.ChildrenFiltered("div").Each(func(_ int, row *goquery.Selection) {
		label := row.Find("div").First()
		value := row.Find("span").First()
		if label.Length() > 0 && value.Length() > 0 {
			detail.Details[normalizeKey(label.Text())] = strings.TrimSpace(value.Text())
		}
	})

	fdesc := article.Find("div.fdesc").First()
	if fdesc.Length() == 0 {
		return models.StudentDetail{}, errPageMalformed("student page is missing its description block")
	}
	fdesc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok {
			detail.Images = append(detail.Images, baseURL+src)
		}
	})

	if message := article.Find("div.fmessage").First(); message.Length() > 0 {
		if href, ok := message.Find("a").First().Attr("href"); ok {
			detail.FreelancePlatform = &href
		}
	}

	return detail, nil
}

// ExtractNewsDetail pulls the full record out of a news article page. A
// missing content block degrades to empty content and no images.
func ExtractNewsDetail(doc *goquery.Document, id int, sourceURL, baseURL string) (models.NewsDetail, error) {
	article := doc.Find("article.full").First()
	if article.Length() == 0 {
		return models.NewsDetail{}, errTargetNotFound("news article", id)
	}

	detail := models.NewsDetail{
		ID:        id,
		Title:     fallbackTitle,
		Images:    []string{},
		SourceURL: sourceURL,
	}
	if h1 := article.Find("h1").First(); h1.Length() > 0 {
		detail.Title = strings.TrimSpace(h1.Text())
	}

	content := article.Find("div.fdesc").First()
	if content.Length() == 0 {
		return detail, nil
	}

	var parts []string
	content.ChildrenFiltered("div").Each(func(_ int, block *goquery.Selection) {
		if text := strings.TrimSpace(block.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	detail.Content = strings.Join(parts, "\n")

	content.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok {
			detail.Images = append(detail.Images, baseURL+src)
		}
	})

	return detail, nil
}
