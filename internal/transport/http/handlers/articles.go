package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/news-compiler/internal/errors"
	"github.com/pribylovaa/news-compiler/internal/models"
	"github.com/pribylovaa/news-compiler/internal/service"
)

// RecentArticles — GET /api/articles/recent.
// Статьи, загруженные за последнее окно (24 часа), по убыванию времени публикации.
func (h *Handlers) RecentArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.RecentlyFetched(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ArticlesFromModels(articles))
}

// RecentArticlesLite — GET /api/articles/recent/lite.
// Та же выдача, но body == null для уменьшения размера ответа.
func (h *Handlers) RecentArticlesLite(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.RecentlyFetchedLite(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ArticlesFromModels(articles))
}

// ArticleByID — GET /api/articles/{id}.
// Нечисловой или отрицательный id -> 400, отсутствующая запись -> 404.
func (h *Handlers) ArticleByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	article, err := h.Service.ArticleByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ArticleFromModel(*article))
}

// WriteArticles — POST /api/articles.
// Принимает JSON-массив статей от скрейпера, выполняет upsert по title
// для каждого элемента и возвращает сохранённые статьи в порядке входа.
func (h *Handlers) WriteArticles(w http.ResponseWriter, r *http.Request) {
	var payload []Article
	if err := decodeStrict(r, &payload); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	items := make([]models.Article, 0, len(payload))
	for _, p := range payload {
		items = append(items, p.ToModel())
	}

	saved, err := h.Service.SaveArticles(r.Context(), items)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ArticlesFromModels(saved))
}
