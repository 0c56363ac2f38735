package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	ImageUC   *usecase.ImageUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/v1")
	auth := BasicAuth(deps.UserUC)

	// Users: el registro es público; leer y actualizar son solo la propia cuenta
	users := v1.Group("/user")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/:id", auth, userHandler.GetByID)
	users.Put("/:id", auth, userHandler.Update)

	// Products: las lecturas son públicas, las mutaciones requieren auth.
	// /user va antes de /:id para que Fiber no lo capture como parámetro.
	products := v1.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.ListAll)
	products.Get("/user", auth, productHandler.ListMine)
	products.Post("/", auth, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)

	// Images: todo el grupo requiere auth
	images := products.Group("/:productId/image", auth)
	imageHandler := NewImageHandler(deps.ImageUC)
	images.Post("/", imageHandler.Upload)
	images.Get("/", imageHandler.List)
	images.Get("/:imageId", imageHandler.GetByID)
	images.Delete("/:imageId", imageHandler.Delete)
}
