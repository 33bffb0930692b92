package formatting

// pluralize выбирает форму слова для числа: one (1, 21), few (2-4, 22-24), many (остальные)
func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeSubjects возвращает правильное склонение слова "предмет"
func PluralizeSubjects(count int) string {
	return pluralize(count, "предмет", "предмета", "предметов")
}

// PluralizeLectures возвращает правильное склонение слова "занятие"
func PluralizeLectures(count int) string {
	return pluralize(count, "занятие", "занятия", "занятий")
}

// PluralizeSections возвращает правильное склонение слова "группа"
func PluralizeSections(count int) string {
	return pluralize(count, "группа", "группы", "групп")
}

// PluralizeSlots возвращает правильное склонение слова "слот"
func PluralizeSlots(count int) string {
	return pluralize(count, "слот", "слота", "слотов")
}
