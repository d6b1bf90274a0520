package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"barbershop/internal/domain"
)

type errorResponseBody struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Code    int           `json:"code,omitempty"`
	Details []fieldDetail `json:"details,omitempty"`
}

type fieldDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type paginatedResponse struct {
	Data       interface{} `json:"data"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func paginatedSuccessResponse(c *gin.Context, data interface{}, totalCount, page, pageSize int) {
	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, paginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func noContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context, message ...string) {
	msg := "se requiere autorización"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	errorResponse(c, http.StatusUnauthorized, msg)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "error interno del servidor")
}

// validationErrorResponse reports binding failures with one detail per
// rejected field.
func validationErrorResponse(c *gin.Context, err error) {
	body := errorResponseBody{
		Status:  "error",
		Message: "datos de entrada inválidos",
		Code:    http.StatusBadRequest,
	}

	var verrs validator.ValidationErrors
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			body.Details = append(body.Details, fieldDetail{Field: fe.Field(), Rule: fe.Tag()})
		}
	case errors.As(err, &verr):
		body.Message = verr.Message
		body.Details = []fieldDetail{{Field: verr.Field, Rule: "invalid"}}
	default:
		body.Message = "formato de datos inválido"
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// handleError maps a service error to its HTTP status. Unknown errors are
// attached to the context for errorMiddleware and reported as a generic 500.
func handleError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case domain.IsValidationError(err):
		validationErrorResponse(c, err)
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, notFoundMsg)
	case errors.Is(err, domain.ErrSlotTaken):
		errorResponse(c, http.StatusConflict, domain.ErrSlotTaken.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		errorResponse(c, http.StatusConflict, domain.ErrAlreadyExists.Error())
	case errors.Is(err, domain.ErrServiceNotFound):
		badRequestResponse(c, domain.ErrServiceNotFound.Error())
	case errors.Is(err, domain.ErrInvalidFile):
		badRequestResponse(c, err.Error())
	case errors.Is(err, domain.ErrFileTooLarge):
		errorResponse(c, http.StatusRequestEntityTooLarge, domain.ErrFileTooLarge.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		unauthorizedResponse(c, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrUserInactive):
		unauthorizedResponse(c, "sesión inválida o expirada")
	default:
		_ = c.Error(err)
		internalServerErrorResponse(c)
	}
}
