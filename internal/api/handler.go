package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"sensorika-scraper/internal/scrape"
)

type Handler struct {
	Service *scrape.Service
	Log     zerolog.Logger
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "scraper API for sensorika.uz students, news and freelancers",
		"web_url": "/web",
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Students(c *gin.Context) {
	students, err := h.Service.Students(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *Handler) StudentByID(c *gin.Context) {
	id, pageURL, ok := h.detailParams(c, "student_url")
	if !ok {
		return
	}
	detail, err := h.Service.StudentByID(c.Request.Context(), id, pageURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) News(c *gin.Context) {
	news, err := h.Service.News(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) NewsByID(c *gin.Context) {
	id, pageURL, ok := h.detailParams(c, "news_url")
	if !ok {
		return
	}
	detail, err := h.Service.NewsByID(c.Request.Context(), id, pageURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) Freelancers(c *gin.Context) {
	freelancers, err := h.Service.Freelancers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancers)
}

// detailParams validates the path id and the caller-supplied page URL. The
// id alone cannot locate a page on the source site, so the full URL from a
// prior listing call is a required query parameter.
func (h *Handler) detailParams(c *gin.Context, urlParam string) (int, string, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, "", false
	}
	pageURL := c.Query(urlParam)
	if pageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter '" + urlParam + "' is required"})
		return 0, "", false
	}
	return id, pageURL, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.Log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("scrape failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var se *scrape.Error
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	switch se.Kind {
	case scrape.KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case scrape.KindSectionNotFound, scrape.KindRecordsEmpty, scrape.KindTargetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
