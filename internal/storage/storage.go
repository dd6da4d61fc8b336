// storage определяет контракты доступа к БД для news-compiler.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/news-compiler/internal/models"
)

// ErrNotFound — сущность отсутствует в хранилище.
var ErrNotFound = errors.New("not found")

// ArticleStorage описывает операции над сущностью models.Article.
type ArticleStorage interface {
	// SaveArticle сохраняет статью с upsert по заголовку: при совпадении
	// title существующая запись перезаписывается целиком с сохранением id,
	// иначе создаётся новая запись. Возвращает сохранённую статью с id.
	SaveArticle(ctx context.Context, item models.Article) (*models.Article, error)
	// ArticleByID возвращает статью по идентификатору.
	// Если запись не найдена — ErrNotFound.
	ArticleByID(ctx context.Context, id int64) (*models.Article, error)
	// ListArticles возвращает все статьи хранилища в порядке вставки (id ASC).
	ListArticles(ctx context.Context) ([]models.Article, error)
}

// Storage задаёт контракт доступа к хранилищу для news-compiler.
type Storage interface {
	ArticleStorage
	Close()
}
