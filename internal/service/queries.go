package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/pribylovaa/news-compiler/internal/models"
	"github.com/pribylovaa/news-compiler/internal/storage"
	"github.com/pribylovaa/news-compiler/pkg/log"
)

// ArticleByID возвращает статью по идентификатору.
//
// Ошибки:
// - ErrInvalidArgument — отрицательный id (до обращения к хранилищу);
// - ErrNotFound — если запись отсутствует (маппинг storage.ErrNotFound);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	const op = "service.queries.ArticleByID"

	lg := log.From(ctx)
	lg.Info("article_by_id_request",
		slog.String("op", op),
		slog.Int64("id", id),
	)

	if id < 0 {
		lg.Warn("article_by_id_invalid_id",
			slog.String("op", op),
			slog.Int64("id", id),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	article, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("article_by_id_not_found",
				slog.String("op", op),
				slog.Int64("id", id),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("article_by_id_storage_error",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("article_by_id_ok",
		slog.String("op", op),
		slog.Int64("id", id),
	)

	return article, nil
}

// RecentlyFetched возвращает статьи, загруженные за скользящее окно
// (cfg.Recent.Window, по умолчанию 24 часа), отсортированные по времени
// публикации по убыванию.
//
// Правила сортировки:
// - статьи без времени публикации идут после всех статей с ним;
// - между двумя статьями без времени публикации — по времени загрузки (убыв.);
// - сортировка стабильна: при равных ключах сохраняется порядок хранилища.
//
// Пустой результат — не ошибка: возвращается пустой срез.
func (s *Service) RecentlyFetched(ctx context.Context) ([]models.Article, error) {
	const op = "service.queries.RecentlyFetched"

	lg := log.From(ctx)
	lg.Info("recently_fetched_request",
		slog.String("op", op),
	)

	all, err := s.storage.ListArticles(ctx)
	if err != nil {
		lg.Error("recently_fetched_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Окно вычисляется в момент запроса — это фильтр, а не хранимый флаг.
	cutoff := time.Now().Add(-s.recentWindow())

	recent := make([]models.Article, 0, len(all))
	for _, article := range all {
		if article.TimeFetched.After(cutoff) {
			recent = append(recent, article)
		}
	}

	slices.SortStableFunc(recent, compareByPublished)

	lg.Info("recently_fetched_ok",
		slog.String("op", op),
		slog.Int("items", len(recent)),
	)

	return recent, nil
}

// RecentlyFetchedLite возвращает тот же список, что и RecentlyFetched,
// но с пустым body для уменьшения размера ответа. Это чистая проекция:
// фильтрация и сортировка не повторяются, хранилище опрашивается один раз.
func (s *Service) RecentlyFetchedLite(ctx context.Context) ([]models.Article, error) {
	const op = "service.queries.RecentlyFetchedLite"

	articles, err := s.RecentlyFetched(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range articles {
		articles[i].Body = nil
	}

	return articles, nil
}

func (s *Service) recentWindow() time.Duration {
	if s.cfg.Recent.Window > 0 {
		return s.cfg.Recent.Window
	}

	return 24 * time.Hour
}

// compareByPublished — тотальный порядок для выдачи recent:
// время публикации по убыванию, отсутствующее время публикации — в конец,
// между двумя отсутствующими — время загрузки по убыванию.
func compareByPublished(a, b models.Article) int {
	switch {
	case a.TimePublished == nil && b.TimePublished == nil:
		return b.TimeFetched.Compare(a.TimeFetched)
	case a.TimePublished == nil:
		return 1
	case b.TimePublished == nil:
		return -1
	default:
		return b.TimePublished.Compare(*a.TimePublished)
	}
}
