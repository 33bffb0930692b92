package service

import "github.com/Freeeeeet/timetable_bot/internal/model"

// ExpandRequests разворачивает очередь в записи для бэкенда: по одной на каждую
// тройку (предмет, группа, недельное занятие). Порядок: предмет, группа, номер занятия.
//
// Предмет без групп уходит одной записью с SectionID == nil, чтобы бэкенд вернул
// его как пропущенный слот, а не потерял.
func ExpandRequests(subjects []model.SubjectRequest) []model.ExpandedRequest {
	var expanded []model.ExpandedRequest

	for _, subject := range subjects {
		facultyIDs := append([]int64(nil), subject.FacultyIDs...)

		if len(subject.ResolvedSections) == 0 {
			expanded = append(expanded, model.ExpandedRequest{
				SubjectName: subject.Name,
				FacultyIDs:  facultyIDs,
				Duration:    subject.SlotDuration,
				Frequency:   subject.LecturesPerWeek,
				SectionID:   nil,
			})
			continue
		}

		for _, sectionID := range subject.ResolvedSections {
			id := sectionID
			for i := 0; i < subject.LecturesPerWeek; i++ {
				expanded = append(expanded, model.ExpandedRequest{
					SubjectName: subject.Name,
					FacultyIDs:  facultyIDs,
					Duration:    subject.SlotDuration,
					Frequency:   subject.LecturesPerWeek,
					SectionID:   &id,
				})
			}
		}
	}

	return expanded
}
