package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

type PagedResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func Paged[T any](c *gin.Context, data []T, total int64, page, limit int) {
	c.JSON(200, PagedResponse[T]{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
