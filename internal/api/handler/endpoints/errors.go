package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SergioDzul/agencyGiuseppi/internal/api/apperr"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps service failures onto HTTP statuses: business-rule
// rejections are the caller's fault, missing rows are 404, everything else is
// a store error.
func writeError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.APIError{Message: "record not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, response.APIError{Message: "duplicate value"})
	default:
		c.JSON(http.StatusInternalServerError, response.APIError{Message: err.Error()})
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "invalid id"})
		return 0, false
	}
	return uint(id), true
}
