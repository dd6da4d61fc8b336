package handlers

import (
	"time"

	"github.com/pribylovaa/news-compiler/internal/models"
)

// Article — wire-форма статьи. Имена полей фиксированы контрактом API
// (camelCase), временные метки — ISO-8601 с оффсетом (RFC 3339).
// id во входящих payload присутствовать может, но игнорируется при записи.
type Article struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Body          *string    `json:"body"`
	TimePublished *time.Time `json:"timePublished"`
	TimeFetched   *time.Time `json:"timeFetched"`
	Source        string     `json:"source"`
	ArticleURL    string     `json:"articleUrl"`
	ImageURL      string     `json:"imageUrl"`
	Category      string     `json:"category"`
}

// ToModel конвертирует wire-форму в доменную сущность.
// Отсутствующий timeFetched остаётся нулевым — его проставит сервис.
func (a Article) ToModel() models.Article {
	item := models.Article{
		ID:            a.ID,
		Title:         a.Title,
		Body:          a.Body,
		TimePublished: a.TimePublished,
		Source:        a.Source,
		ArticleURL:    a.ArticleURL,
		ImageURL:      a.ImageURL,
		Category:      models.Category(a.Category),
	}
	if a.TimeFetched != nil {
		item.TimeFetched = *a.TimeFetched
	}

	return item
}

// ArticleFromModel конвертирует доменную сущность в wire-форму.
func ArticleFromModel(m models.Article) Article {
	fetched := m.TimeFetched
	return Article{
		ID:            m.ID,
		Title:         m.Title,
		Body:          m.Body,
		TimePublished: m.TimePublished,
		TimeFetched:   &fetched,
		Source:        m.Source,
		ArticleURL:    m.ArticleURL,
		ImageURL:      m.ImageURL,
		Category:      string(m.Category),
	}
}

// ArticlesFromModels конвертирует список с сохранением порядка.
// Возвращает пустой срез (не nil), чтобы в JSON всегда был массив.
func ArticlesFromModels(items []models.Article) []Article {
	out := make([]Article, 0, len(items))
	for _, m := range items {
		out = append(out, ArticleFromModel(m))
	}

	return out
}
