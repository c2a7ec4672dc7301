package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// Client fetches pages from the source site and hands them back as parsed
// documents. Responses are decoded to UTF-8 before parsing since the site
// does not always declare its encoding.
type Client struct {
	http    *resty.Client
	sizeCap int64
}

func NewClient(timeout time.Duration, userAgent string, sizeCap int64) *Client {
	c := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	return &Client{http: c, sizeCap: sizeCap}
}

// Document GETs rawURL and parses the body. Transport errors and non-2xx
// statuses are returned as errors; there are no retries.
func (c *Client) Document(ctx context.Context, rawURL string) (*goquery.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	resp, err := c.http.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("get %s: http status %d", rawURL, resp.StatusCode())
	}

	data := resp.Body()
	if c.sizeCap > 0 && int64(len(data)) > c.sizeCap {
		return nil, fmt.Errorf("get %s: response exceeds %d bytes", rawURL, c.sizeCap)
	}

	enc, _, _ := charset.DetermineEncoding(data, resp.Header().Get("Content-Type"))
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("decode %s: %w", rawURL, err)
		}
		utf8data = data
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
}
