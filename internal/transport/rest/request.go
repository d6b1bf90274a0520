package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON binds the request body and answers 400 with field details when
// binding or validation fails.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		validationErrorResponse(c, err)
		return false
	}
	return true
}

// pathID reads a UUID path parameter.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return "", false
	}
	return id, true
}

// pagination reads limit and offset query parameters.
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// requestLanguage picks ?lang=, then the first Accept-Language tag, when it
// is a supported language.
func (h *Handler) requestLanguage(c *gin.Context) string {
	candidates := []string{c.Query("lang")}
	if accept := c.GetHeader("Accept-Language"); accept != "" {
		first := strings.SplitN(accept, ",", 2)[0]
		first = strings.SplitN(first, ";", 2)[0]
		candidates = append(candidates, strings.SplitN(first, "-", 2)[0])
	}

	for _, candidate := range candidates {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		for _, supported := range h.config.Locale.SupportedLanguages {
			if candidate == supported {
				return candidate
			}
		}
	}
	return h.config.Locale.DefaultLanguage
}

func queryBool(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
