package service

import "github.com/pribylovaa/news-compiler/internal/models"

// Categories возвращает человекочитаемые метки всех категорий
// в порядке объявления. Чистая функция без I/O.
func (s *Service) Categories() []string {
	return models.CategoryLabels()
}
