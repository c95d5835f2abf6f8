package rest

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/devodyssey/domain"
	"github.com/Guyuepp/devodyssey/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const MessageBlogNotFound = "Blog not found"

// BlogHandler represent the httphandler for blogs
type BlogHandler struct {
	Service domain.BlogUsecase
	Display domain.DisplayUsecase
}

func NewBlogHandler(svc domain.BlogUsecase, display domain.DisplayUsecase) *BlogHandler {
	return &BlogHandler{
		Service: svc,
		Display: display,
	}
}

// FetchBlogs lists blogs, optionally filtered by ?tag=, together with the
// stored display mode.
func (h *BlogHandler) FetchBlogs(c *gin.Context) {
	tag := c.Query("tag")
	ctx := c.Request.Context()

	blogs, err := h.Service.ListBlogs(ctx, tag)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	mode := h.Display.GetDisplayMode(ctx)
	c.JSON(http.StatusOK, response.NewBlogListFromDomain(blogs, mode, tag, h.Service))
}

// GetByTitle renders the detail page for a URL encoded title.
func (h *BlogHandler) GetByTitle(c *gin.Context) {
	state := h.Service.Detail(c.Request.Context(), escapedSegment(c, 2))

	switch state.Status {
	case domain.ViewFound:
		c.JSON(http.StatusOK, response.NewBlogDetailFromDomain(state.Blog, h.Service))
	case domain.ViewNotFound:
		c.JSON(http.StatusNotFound, ResponseError{Message: MessageBlogNotFound})
	case domain.ViewError:
		c.JSON(http.StatusBadGateway, ResponseError{Message: state.Message})
	default:
		c.JSON(http.StatusAccepted, gin.H{"status": state.Status})
	}
}

// TagTarget tells the client where clicking a tag should navigate.
func (h *BlogHandler) TagTarget(c *gin.Context) {
	tag, err := url.PathUnescape(escapedSegment(c, 2))
	if err != nil || tag == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	target := h.Service.ResolveTagTarget(tag)
	c.JSON(http.StatusOK, gin.H{
		"path":  target.Path,
		"query": target.Query,
		"url":   target.String(),
	})
}

// escapedSegment returns path segment pos still percent-encoded. Gin params
// are decoded only when the request has a raw path, so they cannot be trusted
// for titles containing '%' or '/'.
func escapedSegment(c *gin.Context, pos int) string {
	segments := strings.Split(c.Request.URL.EscapedPath(), "/")
	if pos >= len(segments) {
		return ""
	}
	return segments[pos]
}

// getStatusCode will get the code of the error from domain.BlogUsecase
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
