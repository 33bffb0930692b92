package service

import "github.com/Freeeeeet/timetable_bot/internal/model"

// ResolveSections применяет режим групп к справочнику и возвращает итоговый набор без дублей.
//   - ALL: все группы справочника
//   - SPECIFIC: ровно выбранные группы (выбор обязателен)
//   - EXCLUDE: все группы, кроме выбранных (выбор обязателен)
//
// EXCLUDE всех групп даёт пустой набор без ошибки - такой предмет уйдёт бэкенду
// одной записью без группы и вернётся пропущенным слотом.
func ResolveSections(scope model.SectionScope, selected []int64, sections []model.Section) ([]int64, error) {
	switch scope {
	case model.ScopeAll:
		ids := make([]int64, 0, len(sections))
		for _, s := range sections {
			ids = append(ids, s.ID)
		}
		return dedupeIDs(ids), nil

	case model.ScopeSpecific:
		if len(selected) == 0 {
			return nil, newValidationError("sections", "select at least one section")
		}
		return dedupeIDs(selected), nil

	case model.ScopeExclude:
		if len(selected) == 0 {
			return nil, newValidationError("sections", "select at least one section")
		}
		excluded := make(map[int64]struct{}, len(selected))
		for _, id := range selected {
			excluded[id] = struct{}{}
		}
		ids := make([]int64, 0, len(sections))
		for _, s := range sections {
			if _, skip := excluded[s.ID]; !skip {
				ids = append(ids, s.ID)
			}
		}
		return dedupeIDs(ids), nil

	default:
		return nil, newValidationError("scope", "unknown section scope")
	}
}

// dedupeIDs убирает повторы, сохраняя порядок первого вхождения
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
