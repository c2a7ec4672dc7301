package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"sensorika-scraper/internal/models"
)

// Fetcher retrieves a URL and returns it as a parsed document.
type Fetcher interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

// Service runs the fetch-locate-extract pipeline for each request. It holds
// no mutable state; every call re-fetches from the source site.
type Service struct {
	fetcher Fetcher
	baseURL string
}

func NewService(fetcher Fetcher, baseURL string) *Service {
	return &Service{fetcher: fetcher, baseURL: baseURL}
}

func (s *Service) home(ctx context.Context) (*goquery.Document, error) {
	doc, err := s.fetcher.Document(ctx, s.baseURL)
	if err != nil {
		return nil, errUpstream(err)
	}
	return doc, nil
}

// Students lists every student card on the home page.
func (s *Service) Students(ctx context.Context) ([]models.Student, error) {
	doc, err := s.home(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractStudents(doc, s.baseURL)
}

// StudentByID fetches the given student page and extracts the full record.
// The page URL must be supplied by the caller; the id alone cannot locate it.
func (s *Service) StudentByID(ctx context.Context, id int, pageURL string) (models.StudentDetail, error) {
	doc, err := s.fetcher.Document(ctx, pageURL)
	if err != nil {
		return models.StudentDetail{}, errUpstream(err)
	}
	return ExtractStudentDetail(doc, id, pageURL, s.baseURL)
}

// News lists the home-page news column.
func (s *Service) News(ctx context.Context) ([]models.NewsItem, error) {
	doc, err := s.home(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractNews(doc, s.baseURL)
}

// NewsByID fetches the given article page and extracts the full record.
func (s *Service) NewsByID(ctx context.Context, id int, pageURL string) (models.NewsDetail, error) {
	doc, err := s.fetcher.Document(ctx, pageURL)
	if err != nil {
		return models.NewsDetail{}, errUpstream(err)
	}
	return ExtractNewsDetail(doc, id, pageURL, s.baseURL)
}

// Freelancers lists the cards of the home-page freelancer section.
func (s *Service) Freelancers(ctx context.Context) ([]models.Student, error) {
	doc, err := s.home(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractFreelancers(doc, s.baseURL)
}
