package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biholo/planete-xplorer/domain"
)

// envelope is the uniform response body. Lists additionally carry the
// pagination meta.
type envelope struct {
	Message    string                 `json:"message"`
	Data       interface{}            `json:"data"`
	Status     int                    `json:"status"`
	Pagination *domain.PaginationMeta `json:"pagination,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Message: message, Data: data, Status: status})
}

func respondList(c *gin.Context, message string, data interface{}, meta *domain.PaginationMeta) {
	c.JSON(http.StatusOK, envelope{
		Message:    message,
		Data:       data,
		Status:     http.StatusOK,
		Pagination: meta,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Message: message, Data: nil, Status: status})
}

// listQuery binds the shared page/limit/search/sort query parameters.
func listQuery(c *gin.Context) domain.ListQuery {
	var q struct {
		Page   int    `form:"page"`
		Limit  int    `form:"limit"`
		Search string `form:"search"`
		Sort   string `form:"sort"`
	}
	_ = c.ShouldBindQuery(&q)
	return domain.ListQuery{Page: q.Page, Limit: q.Limit, Search: q.Search, Sort: q.Sort}
}
