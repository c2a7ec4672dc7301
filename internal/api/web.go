package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// The /web pages always answer 200: scrape failures are rendered as an
// inline error block instead of propagating the HTTP status. This diverges
// from the JSON surface on purpose.

func (h *Handler) WebIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) WebStudents(c *gin.Context) {
	students, err := h.Service.Students(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusOK, "students.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "students.html", gin.H{"Students": students})
}

func (h *Handler) WebStudentByID(c *gin.Context) {
	id, pageURL, ok := webDetailParams(c, "student_url")
	if !ok {
		c.HTML(http.StatusOK, "student_detail.html", gin.H{"Error": "a numeric id and a 'student_url' query parameter are required"})
		return
	}
	detail, err := h.Service.StudentByID(c.Request.Context(), id, pageURL)
	if err != nil {
		c.HTML(http.StatusOK, "student_detail.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "student_detail.html", gin.H{"Student": detail})
}

func (h *Handler) WebNews(c *gin.Context) {
	news, err := h.Service.News(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusOK, "news.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "news.html", gin.H{"News": news})
}

func (h *Handler) WebNewsByID(c *gin.Context) {
	id, pageURL, ok := webDetailParams(c, "news_url")
	if !ok {
		c.HTML(http.StatusOK, "news_detail.html", gin.H{"Error": "a numeric id and a 'news_url' query parameter are required"})
		return
	}
	detail, err := h.Service.NewsByID(c.Request.Context(), id, pageURL)
	if err != nil {
		c.HTML(http.StatusOK, "news_detail.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "news_detail.html", gin.H{"Article": detail})
}

func (h *Handler) WebFreelancers(c *gin.Context) {
	freelancers, err := h.Service.Freelancers(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusOK, "freelancers.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "freelancers.html", gin.H{"Freelancers": freelancers})
}

func webDetailParams(c *gin.Context, urlParam string) (int, string, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, "", false
	}
	pageURL := c.Query(urlParam)
	if pageURL == "" {
		return 0, "", false
	}
	return id, pageURL, true
}
