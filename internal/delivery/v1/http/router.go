package http

import (
	_ "github.com/DRSN-tech/catalog-service/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, catUC usecase.CategoryUC, accUC usecase.AccessUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(prUC, r.logger))
		registerCategoryRoutes(v1, NewCategoryHandler(catUC, r.logger))
		registerAccessRoutes(v1, NewAccessHandler(accUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.addProducts)
		pr.Put("/", prHandler.updateProducts)
		pr.Delete("/", prHandler.deleteProducts)
		pr.Get("/", prHandler.getProducts)
		pr.Get("/by-category", prHandler.getProductsByCategory)
		pr.Post("/{id}/image", prHandler.attachProductImage)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Post("/", catHandler.addCategories)
		cat.Put("/", catHandler.updateCategories)
		cat.Delete("/", catHandler.deleteCategories)
		cat.Get("/", catHandler.getCategories)
		cat.Get("/listing", catHandler.listCategories)
	})
}

func registerAccessRoutes(router chi.Router, accHandler *AccessHandler) {
	router.Route("/users", func(us chi.Router) {
		us.Post("/", accHandler.addUsers)
		us.Put("/", accHandler.updateUsers)
		us.Delete("/", accHandler.deleteUsers)
		us.Get("/", accHandler.getUsers)
	})

	router.Route("/permissions", func(perm chi.Router) {
		perm.Post("/", accHandler.addPermissions)
		perm.Put("/", accHandler.updatePermissions)
		perm.Delete("/", accHandler.deletePermissions)
	})

	router.Route("/roles", func(rl chi.Router) {
		rl.Post("/", accHandler.addRoles)
		rl.Put("/", accHandler.updateRoles)
		rl.Delete("/", accHandler.deleteRoles)
		rl.Get("/listing", accHandler.listRoles)
	})
}
