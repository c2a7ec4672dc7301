package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentPageHTML = `<!doctype html><html><body>
<article class="full">
  <h1> Sevinova Jasmina </h1>
  <div class="finfo">
    <div>O'quv yo'nalishi</div>
    <span>Kompyuter savodxonligi</span>
  </div>
  <div class="finfo">
    <div>Yoshi</div>
    <span>17</span>
  </div>
  <section class="fnested">
    <div>
      <div>Yashirin</div>
      <span>ignored</span>
    </div>
  </section>
  <div class="fdesc">
    <p>Portfolio:</p>
    <img src="/uploads/works/1.jpg">
    <img src="/uploads/works/2.jpg">
  </div>
  <div class="fmessage">
    <a href="https://www.upwork.com/freelancers/jasmina">Upwork</a>
  </div>
</article>
</body></html>`

func TestExtractStudentDetail(t *testing.T) {
	doc := parseDoc(t, studentPageHTML)
	src := testBase + "/students/kompyuter-savodxonligi/2212-sevinova-jasmina.html"

	detail, err := ExtractStudentDetail(doc, 2212, src, testBase)
	require.NoError(t, err)

	assert.Equal(t, 2212, detail.ID)
	assert.Equal(t, "Sevinova Jasmina", detail.Name)
	assert.Equal(t, src, detail.SourceURL)
	assert.Equal(t, map[string]string{
		"oquv_yonalishi": "Kompyuter savodxonligi",
		"yoshi":          "17",
	}, detail.Details)
	assert.Equal(t, []string{
		testBase + "/uploads/works/1.jpg",
		testBase + "/uploads/works/2.jpg",
	}, detail.Images)
	require.NotNil(t, detail.FreelancePlatform)
	assert.Equal(t, "https://www.upwork.com/freelancers/jasmina", *detail.FreelancePlatform)
}

// Only the article's direct child divs count as label/value rows; the pair
// wrapped in a section element is skipped.
func TestExtractStudentDetailRowsAreDirectChildDivsOnly(t *testing.T) {
	doc := parseDoc(t, studentPageHTML)
	detail, err := ExtractStudentDetail(doc, 1, "u", testBase)
	require.NoError(t, err)
	assert.NotContains(t, detail.Details, "yashirin")
}

func TestExtractStudentDetailNoArticle(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="content"></div></body></html>`)
	_, err := ExtractStudentDetail(doc, 2212, "u", testBase)
	assert.Equal(t, KindTargetNotFound, kindOf(t, err))
	assert.Contains(t, err.Error(), "2212")
}

// The student path rejects a page without its description block outright.
// The news path below degrades instead. The asymmetry is intentional.
func TestExtractStudentDetailMissingDescriptionBlock(t *testing.T) {
	doc := parseDoc(t, `<html><body><article class="full"><h1>J</h1></article></body></html>`)
	_, err := ExtractStudentDetail(doc, 2212, "u", testBase)
	assert.Equal(t, KindPageMalformed, kindOf(t, err))
}

func TestExtractStudentDetailFallbackName(t *testing.T) {
	doc := parseDoc(t, `<html><body><article class="full"><div class="fdesc"></div></article></body></html>`)
	detail, err := ExtractStudentDetail(doc, 7, "u", testBase)
	require.NoError(t, err)
	assert.Equal(t, fallbackDetailName, detail.Name)
	assert.Empty(t, detail.Details)
	assert.Equal(t, []string{}, detail.Images)
	assert.Nil(t, detail.FreelancePlatform)
}

const newsPageHTML = `<!doctype html><html><body>
<article class="full">
  <h1>Ma'naviy-ma'rifiy mashg'ulot</h1>
  <div class="fdesc">
    <div>Birinchi xatboshi.</div>
    <div>   </div>
    <div>Ikkinchi xatboshi.</div>
    <img src="/uploads/news/5049.jpg">
  </div>
</article>
</body></html>`

func TestExtractNewsDetail(t *testing.T) {
	doc := parseDoc(t, newsPageHTML)
	src := testBase + "/yangiliklar/5049-manaviy-marifiy.html"

	detail, err := ExtractNewsDetail(doc, 5049, src, testBase)
	require.NoError(t, err)

	assert.Equal(t, 5049, detail.ID)
	assert.Equal(t, "Ma'naviy-ma'rifiy mashg'ulot", detail.Title)
	assert.Equal(t, "Birinchi xatboshi.\nIkkinchi xatboshi.", detail.Content)
	assert.Equal(t, []string{testBase + "/uploads/news/5049.jpg"}, detail.Images)
	assert.Equal(t, src, detail.SourceURL)
}

func TestExtractNewsDetailMissingContentBlockDegrades(t *testing.T) {
	doc := parseDoc(t, `<html><body><article class="full"><h1>T</h1></article></body></html>`)
	detail, err := ExtractNewsDetail(doc, 1, "u", testBase)
	require.NoError(t, err)
	assert.Equal(t, "", detail.Content)
	assert.Equal(t, []string{}, detail.Images)
}

func TestExtractNewsDetailNoArticle(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)
	_, err := ExtractNewsDetail(doc, 5049, "u", testBase)
	assert.Equal(t, KindTargetNotFound, kindOf(t, err))
}

func TestExtractNewsDetailFallbackTitle(t *testing.T) {
	doc := parseDoc(t, `<html><body><article class="full"></article></body></html>`)
	detail, err := ExtractNewsDetail(doc, 1, "u", testBase)
	require.NoError(t, err)
	assert.Equal(t, fallbackTitle, detail.Title)
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"O'quv yo'nalishi": "oquv_yonalishi",
		" Yoshi ":          "yoshi",
		"Oʻquv markazi":    "oquv_markazi",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeKey(in), in)
	}
}
