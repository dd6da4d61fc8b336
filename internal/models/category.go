package models

import "strings"

// Category — категория статьи. Набор значений закрыт и зашит в код;
// при необходимости расширяется здесь же.
type Category string

const (
	CategoryUnitedStatesPolitics Category = "UNITED_STATES_POLITICS"
	CategoryWorldPolitics        Category = "WORLD_POLITICS"
	CategoryScience              Category = "SCIENCE"
	CategoryTechnology           Category = "TECHNOLOGY"
	CategorySports               Category = "SPORTS"
	CategoryEntertainment        Category = "ENTERTAINMENT"
	CategoryBusiness             Category = "BUSINESS"
	CategoryHealth               Category = "HEALTH"
	CategoryEducation            Category = "EDUCATION"
	CategoryEnvironment          Category = "ENVIRONMENT"
	CategoryTravel               Category = "TRAVEL"
	CategoryFood                 Category = "FOOD"
	CategoryLifestyle            Category = "LIFESTYLE"
	CategoryOpinion              Category = "OPINION"
	CategoryOther                Category = "OTHER"
)

// categories — все категории в порядке объявления.
// Порядок фиксирован: его видит фронт в GET /api/categories.
var categories = []Category{
	CategoryUnitedStatesPolitics,
	CategoryWorldPolitics,
	CategoryScience,
	CategoryTechnology,
	CategorySports,
	CategoryEntertainment,
	CategoryBusiness,
	CategoryHealth,
	CategoryEducation,
	CategoryEnvironment,
	CategoryTravel,
	CategoryFood,
	CategoryLifestyle,
	CategoryOpinion,
	CategoryOther,
}

// Categories возвращает копию списка всех категорий в порядке объявления.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid сообщает, принадлежит ли значение закрытому набору категорий.
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}

	return false
}

// Label возвращает человекочитаемую форму категории:
// подчёркивания заменяются пробелами, каждое слово — с заглавной буквы.
// Пример: UNITED_STATES_POLITICS -> "United States Politics".
func (c Category) Label() string {
	words := strings.Split(strings.ToLower(string(c)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.TrimSpace(strings.Join(words, " "))
}

// CategoryLabels возвращает человекочитаемые метки всех категорий
// в порядке объявления.
func CategoryLabels() []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Label())
	}

	return out
}
