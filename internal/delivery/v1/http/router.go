package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/priyansh911911/Furniture-B/docs" // Импорт сгенерированных файлов
	"github.com/priyansh911911/Furniture-B/internal/cfg"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

type Router struct {
	router *chi.Mux
	cfg    *cfg.Config
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.Config, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(
	productUC usecase.ProductUC,
	categoryUC usecase.CategoryUC,
	inquiryUC usecase.InquiryUC,
	contactUC usecase.ContactUC,
	authUC usecase.AuthUC,
) {
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))

	authMw := NewAuthMiddleware(authUC, r.cfg.Auth.AdminToken, r.logger)

	r.router.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, NewProductHandler(productUC, r.logger), authMw)
		registerCategoryRoutes(api, NewCategoryHandler(categoryUC, r.logger), authMw)
		registerInquiryRoutes(api, NewInquiryHandler(inquiryUC, r.logger), authMw)
		registerContactRoutes(api, NewContactHandler(contactUC, r.logger), authMw)
		registerAuthRoutes(api, NewAuthHandler(authUC, r.cfg.Auth.SessionTTL, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler, authMw *AuthMiddleware) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
		pr.With(authMw.Handle).Post("/", h.createProduct)
		pr.With(authMw.Handle).Put("/{id}", h.updateProduct)
		pr.With(authMw.Handle).Delete("/{id}", h.deleteProduct)
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler, authMw *AuthMiddleware) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.With(authMw.Handle).Post("/", h.createCategory)
		cat.With(authMw.Handle).Put("/{id}", h.updateCategory)
		cat.With(authMw.Handle).Delete("/{id}", h.deleteCategory)
	})
}

func registerInquiryRoutes(router chi.Router, h *InquiryHandler, authMw *AuthMiddleware) {
	router.Route("/inquiries", func(inq chi.Router) {
		inq.Post("/", h.submitInquiry)
		inq.With(authMw.Handle).Get("/", h.listInquiries)
		inq.With(authMw.Handle).Put("/{id}", h.updateInquiryStatus)
	})
}

func registerContactRoutes(router chi.Router, h *ContactHandler, authMw *AuthMiddleware) {
	router.Route("/contact", func(con chi.Router) {
		con.Post("/", h.submitContact)
		con.With(authMw.Handle).Get("/", h.listContacts)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", h.login)
		auth.Post("/logout", h.logout)
		auth.Post("/create-admin", h.createAdmin)
	})
}
