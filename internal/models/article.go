// models содержит доменные сущности news-compiler.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// Article — доменная сущность новостной статьи.
//
// Особенности:
//   - ID присваивается хранилищем (BIGSERIAL), 0 — до первой записи;
//   - Title уникален в пределах хранилища и служит ключом upsert;
//   - временные метки — в UTC.
type Article struct {
	// ID — уникальный идентификатор статьи.
	ID int64
	// Title — заголовок статьи. Не может совпадать с заголовком другой статьи.
	Title string
	// Body — полный текст статьи; nil в lite-ответах.
	Body *string
	// TimePublished — время публикации у источника; источник может его не сообщать.
	TimePublished *time.Time
	// TimeFetched — время загрузки статьи скрейпером.
	TimeFetched time.Time
	// Source — издание, из которого получена статья.
	Source string
	// ArticleURL — ссылка на оригинал статьи.
	ArticleURL string
	// ImageURL — ссылка на обложку статьи.
	ImageURL string
	// Category — категория статьи (закрытый набор значений).
	Category Category
}
