package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// ImageHandler maneja las peticiones HTTP para imágenes de producto.
// Todas las rutas de imagen requieren auth; las mutaciones además son
// solo del dueño del producto.
type ImageHandler struct {
	uc *usecase.ImageUseCase
}

// NewImageHandler construye el handler.
func NewImageHandler(uc *usecase.ImageUseCase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen a un producto (solo el dueño)
// @Tags         images
// @Security     BasicAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        productId  path      string  true  "ID del producto"
// @Param        file       formData  file    true  "Imagen (jpeg o png)"
// @Success      201        {object}  dto.ImageResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /v1/product/{productId}/image [post]
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere el campo multipart 'file'"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}

	in := dto.UploadImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}
	out, err := h.uc.Upload(c.Context(), c.Params("productId"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar imágenes de un producto
// @Tags         images
// @Security     BasicAuth
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}   dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/product/{productId}/image [get]
func (h *ImageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener metadatos de una imagen
// @Tags         images
// @Security     BasicAuth
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        imageId    path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.ImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/product/{productId}/image/{imageId} [get]
func (h *ImageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("productId"), c.Params("imageId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una imagen (solo el dueño del producto)
// @Tags         images
// @Security     BasicAuth
// @Param        productId  path  string  true  "ID del producto"
// @Param        imageId    path  string  true  "ID de la imagen"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/product/{productId}/image/{imageId} [delete]
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("productId"), c.Params("imageId"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
