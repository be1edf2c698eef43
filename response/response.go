package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type InfraResponse struct {
	Code    int
	Message string
	Data    interface{}
}

func Response(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, InfraResponse{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func ResponseParamterError(c *gin.Context, err error) {
	ResponseError(c, http.StatusBadRequest, err)
}

func ResponseError(c *gin.Context, statusCode int, err error) {
	c.JSON(statusCode, InfraResponse{
		Code:    statusCode,
		Message: err.Error(),
	})
}
