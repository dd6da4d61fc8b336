package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/news-compiler/internal/models"
	"github.com/pribylovaa/news-compiler/pkg/log"
)

// SaveArticles сохраняет пачку статей в порядке поступления: каждый элемент
// проходит через SaveArticle независимо, позиция результата соответствует
// позиции входа. Первая же ошибка прерывает обработку и прокидывается наверх;
// уже записанные элементы остаются в хранилище (частичный успех не репортится).
func (s *Service) SaveArticles(ctx context.Context, items []models.Article) ([]models.Article, error) {
	const op = "service.commands.SaveArticles"

	lg := log.From(ctx)
	lg.Info("save_articles_request",
		slog.String("op", op),
		slog.Int("items", len(items)),
	)

	saved := make([]models.Article, 0, len(items))
	for i, item := range items {
		written, err := s.SaveArticle(ctx, item)
		if err != nil {
			lg.Error("save_articles_item_failed",
				slog.String("op", op),
				slog.Int("index", i),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: item %d: %w", op, i, err)
		}

		saved = append(saved, *written)
	}

	lg.Info("save_articles_ok",
		slog.String("op", op),
		slog.Int("items", len(saved)),
	)

	return saved, nil
}

// SaveArticle сохраняет одну статью с upsert по title.
//
// Особенности:
//   - идентификатор из входной статьи игнорируется: id назначает хранилище
//     (при совпадении title сохраняется id существующей записи);
//   - нулевое TimeFetched заменяется текущим временем в UTC;
//   - неизвестный токен категории — ErrInvalidArgument.
func (s *Service) SaveArticle(ctx context.Context, item models.Article) (*models.Article, error) {
	const op = "service.commands.SaveArticle"

	if !item.Category.IsValid() {
		return nil, fmt.Errorf("%s: category %q: %w", op, item.Category, ErrInvalidArgument)
	}

	item.ID = 0
	if item.TimeFetched.IsZero() {
		item.TimeFetched = time.Now().UTC()
	}

	written, err := s.storage.SaveArticle(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return written, nil
}
