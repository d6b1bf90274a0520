package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Artículos publicados
// @Tags Blog
// @Produce json
// @Success 200 {array} domain.BlogPost
// @Router /blog [get]
func (h *Handler) getBlogPosts(c *gin.Context) {
	h.listBlogPosts(c, domain.BlogFilter{OnlyPublished: true})
}

// @Summary Artículos publicados de una categoría
// @Tags Blog
// @Produce json
// @Param category path string true "hair-care, beard-care o styling-tips"
// @Success 200 {array} domain.BlogPost
// @Failure 400 {object} errorResponseBody "Categoría inválida"
// @Router /blog/category/{category} [get]
func (h *Handler) getBlogPostsByCategory(c *gin.Context) {
	category := domain.BlogCategory(c.Param("category"))
	if !category.Valid() {
		badRequestResponse(c, "categoría inválida")
		return
	}

	h.listBlogPosts(c, domain.BlogFilter{Category: &category, OnlyPublished: true})
}

// @Summary Artículo por slug
// @Tags Blog
// @Produce json
// @Param slug path string true "Slug del artículo"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} errorResponseBody "Artículo no encontrado"
// @Router /blog/{slug} [get]
func (h *Handler) getBlogPostBySlug(c *gin.Context) {
	post, err := h.services.Blog.GetBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		handleError(c, err, "artículo no encontrado")
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Todos los artículos
// @Tags Administración del blog
// @Produce json
// @Param category query string false "Categoría"
// @Success 200 {array} domain.BlogPost
// @Security ApiKeyAuth
// @Router /admin/blog [get]
func (h *Handler) adminGetBlogPosts(c *gin.Context) {
	var filter domain.BlogFilter
	if raw := c.Query("category"); raw != "" {
		category := domain.BlogCategory(raw)
		if !category.Valid() {
			badRequestResponse(c, "categoría inválida")
			return
		}
		filter.Category = &category
	}

	h.listBlogPosts(c, filter)
}

func (h *Handler) listBlogPosts(c *gin.Context, filter domain.BlogFilter) {
	posts, err := h.services.Blog.List(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, posts)
}

// @Summary Crear un artículo
// @Description Si no se envía slug se genera a partir del título en el idioma por defecto.
// @Tags Administración del blog
// @Accept json
// @Produce json
// @Param input body domain.CreateBlogPostDTO true "Datos del artículo"
// @Success 201 {object} domain.BlogPost
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 409 {object} errorResponseBody "El slug ya existe"
// @Security ApiKeyAuth
// @Router /admin/blog [post]
func (h *Handler) createBlogPost(c *gin.Context) {
	var req domain.CreateBlogPostDTO
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.services.Blog.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "artículo no encontrado")
		return
	}

	createdResponse(c, post)
}

// @Summary Obtener un artículo
// @Tags Administración del blog
// @Produce json
// @Param id path string true "ID del artículo"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} errorResponseBody "Artículo no encontrado"
// @Security ApiKeyAuth
// @Router /admin/blog/{id} [get]
func (h *Handler) getBlogPostByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.services.Blog.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "artículo no encontrado")
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Actualizar un artículo
// @Tags Administración del blog
// @Accept json
// @Produce json
// @Param id path string true "ID del artículo"
// @Param input body domain.UpdateBlogPostDTO true "Campos a modificar"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} errorResponseBody "Artículo no encontrado"
// @Failure 409 {object} errorResponseBody "El slug ya existe"
// @Security ApiKeyAuth
// @Router /admin/blog/{id} [put]
func (h *Handler) updateBlogPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateBlogPostDTO
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.services.Blog.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "artículo no encontrado")
		return
	}

	successResponse(c, http.StatusOK, post)
}

// @Summary Eliminar un artículo
// @Tags Administración del blog
// @Param id path string true "ID del artículo"
// @Success 204
// @Failure 404 {object} errorResponseBody "Artículo no encontrado"
// @Security ApiKeyAuth
// @Router /admin/blog/{id} [delete]
func (h *Handler) deleteBlogPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Blog.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "artículo no encontrado")
		return
	}

	noContentResponse(c)
}
