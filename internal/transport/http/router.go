package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/news-compiler/internal/service"
	"github.com/pribylovaa/news-compiler/internal/transport/http/handlers"
	"github.com/pribylovaa/news-compiler/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	CORSOrigin string
	BasePath   string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),             // безопасно ловим паники
		middleware.RequestID(),           // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),  // кладём request-scoped логгер в контекст и логируем
		middleware.CORS(opts.CORSOrigin), // фронт и скрейпер живут на других origin
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// articles: чтение (фронт)
	r.Get("/articles/recent", h.RecentArticles)
	r.Get("/articles/recent/lite", h.RecentArticlesLite)
	r.Get("/articles/{id}", h.ArticleByID)

	// articles: запись (скрейпер)
	r.Post("/articles", h.WriteArticles)

	// categories
	r.Get("/categories", h.Categories)

	// health
	r.Get("/health/ping", h.Ping)
}
