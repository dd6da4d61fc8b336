package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/news-compiler/internal/models"
	"github.com/pribylovaa/news-compiler/internal/storage"
)

const articleColumns = `id, title, body, time_published, time_fetched, source, article_url, image_url, category`

// SaveArticle сохраняет статью с upsert по title.
//
// Политика обновления: при конфликте по title все поля записи перезаписываются
// значениями из входной статьи, id существующей записи сохраняется.
// Upsert выполняется одним атомарным запросом (ON CONFLICT), поэтому гонка
// «проверили-затем-вставили» двух конкурентных писателей невозможна:
// оба успешно запишутся, победит последний.
func (s *Storage) SaveArticle(ctx context.Context, item models.Article) (*models.Article, error) {
	const op = "storage.postgres.SaveArticle"

	row := s.db.QueryRow(ctx, `
	INSERT INTO articles (title, body, time_published, time_fetched, source, article_url, image_url, category)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (title) DO UPDATE
	SET
	body = EXCLUDED.body,
	time_published = EXCLUDED.time_published,
	time_fetched = EXCLUDED.time_fetched,
	source = EXCLUDED.source,
	article_url = EXCLUDED.article_url,
	image_url = EXCLUDED.image_url,
	category = EXCLUDED.category
	RETURNING `+articleColumns,
		item.Title, item.Body, utcOrNil(item.TimePublished), item.TimeFetched.UTC(),
		item.Source, item.ArticleURL, item.ImageURL, string(item.Category))

	saved, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// ArticleByID возвращает статью по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) ArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	const op = "storage.postgres.ArticleByID"

	row := s.db.QueryRow(ctx, `
	SELECT `+articleColumns+`
	FROM articles
	WHERE id = $1
	`, id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// ListArticles возвращает все статьи в порядке вставки (id ASC).
// Фильтрация по окну и сортировка по времени публикации — дело сервисного слоя.
func (s *Storage) ListArticles(ctx context.Context) ([]models.Article, error) {
	const op = "storage.postgres.ListArticles"

	rows, err := s.db.Query(ctx, `
	SELECT `+articleColumns+`
	FROM articles
	ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *article)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// scanArticle читает одну строку articles с нормализацией временных меток в UTC.
func scanArticle(row pgx.Row) (*models.Article, error) {
	var (
		article  models.Article
		category string
	)

	if err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Body,
		&article.TimePublished,
		&article.TimeFetched,
		&article.Source,
		&article.ArticleURL,
		&article.ImageURL,
		&category,
	); err != nil {
		return nil, err
	}

	article.Category = models.Category(category)
	article.TimeFetched = article.TimeFetched.UTC()
	if article.TimePublished != nil {
		t := article.TimePublished.UTC()
		article.TimePublished = &t
	}

	return &article, nil
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	u := t.UTC()
	return &u
}
