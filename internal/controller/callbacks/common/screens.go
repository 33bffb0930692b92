package common

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

const (
	facultyPageSize   = 8
	sectionPageSize   = 12
	timetablePageSize = 15
	maxSearchResults  = 30

	// запас до лимита Telegram в 4096 символов
	maxScreenLength = 3500
)

// MainMenuText текст для /start и /help
func MainMenuText() string {
	return "🗓 <b>Составление расписания</b>\n\n" +
		"Соберите очередь предметов и отправьте её в сервис расписания.\n\n" +
		"/addsubject - Добавить предмет в очередь\n" +
		"/queue - Очередь предметов\n" +
		"/generate - Сгенерировать расписание\n" +
		"/timetable - Последнее расписание по группам\n" +
		"/reload - Обновить справочник\n" +
		"/cancel - Отменить текущий диалог\n" +
		"/help - Справка"
}

// formHeader шапка диалога с уже заполненными полями
func formHeader(form service.SubjectForm, cache *catalog.Cache) string {
	var sb strings.Builder
	sb.WriteString("📝 <b>Новый предмет</b>\n")

	if form.Name != "" {
		sb.WriteString(fmt.Sprintf("\n📚 Название: %s", html.EscapeString(form.Name)))
	}
	if names := cache.FacultyNames(form.FacultyIDs); len(names) > 0 {
		sb.WriteString(fmt.Sprintf("\n👨‍🏫 Преподаватели: %s", html.EscapeString(strings.Join(names, ", "))))
	}
	if form.SlotDuration > 0 {
		sb.WriteString(fmt.Sprintf("\n⏱ Длительность: %d %s", form.SlotDuration, formatting.PluralizeSlots(form.SlotDuration)))
	}
	if form.LecturesPerWeek > 0 {
		sb.WriteString(fmt.Sprintf("\n🔁 В неделю: %d %s", form.LecturesPerWeek, formatting.PluralizeLectures(form.LecturesPerWeek)))
	}
	if form.Scope != "" {
		sb.WriteString(fmt.Sprintf("\n👥 Группы: %s", formatting.FormatScope(form.Scope)))
	}

	sb.WriteString("\n\n")
	return sb.String()
}

// NamePrompt первый шаг диалога
func NamePrompt() string {
	return "📝 <b>Новый предмет</b>\n\n" +
		"Шаг 1 из 5: Как называется предмет?\n\n" +
		"Например: Алгебра, Физика, Программирование\n\n" +
		"Для отмены используйте /cancel"
}

// FacultyPickerScreen выбор преподавателей (несколько, постранично)
func FacultyPickerScreen(cache *catalog.Cache, form service.SubjectForm, page int) (string, *models.InlineKeyboardMarkup) {
	faculty := cache.Snapshot().Faculty
	from, to, page, pages := PageBounds(len(faculty), page, facultyPageSize)

	text := formHeader(form, cache) +
		"Шаг 2 из 5: Выберите преподавателей (можно несколько) и нажмите «Готово»."
	if len(faculty) == 0 {
		text += "\n\n⚠️ В справочнике нет преподавателей. Обновите его: /reload"
	}

	kb := keyboard.NewBuilder()
	for _, f := range faculty[from:to] {
		kb.Row(keyboard.ToggleButton(f.Name, form.HasFaculty(f.ID), FormFaculty+strconv.FormatInt(f.ID, 10)))
	}
	kb.AddPagination(FormFacultyPage, page, pages)
	kb.Row(keyboard.DoneButton(FormFacultyDone))
	kb.AddCancelButton(FormCancel)

	return text, kb.Build()
}

// DurationPickerScreen выбор длительности занятия в слотах
func DurationPickerScreen(cache *catalog.Cache, form service.SubjectForm) (string, *models.InlineKeyboardMarkup) {
	text := formHeader(form, cache) +
		fmt.Sprintf("Шаг 3 из 5: Сколько слотов подряд занимает одно занятие (%d-%d)?\n\n"+
			"Выберите кнопкой или отправьте число.", service.MinSlotDuration, service.MaxSlotDuration)

	buttons := make([]models.InlineKeyboardButton, 0, service.MaxSlotDuration)
	for n := service.MinSlotDuration; n <= service.MaxSlotDuration; n++ {
		buttons = append(buttons, keyboard.Button(strconv.Itoa(n), FormDuration+strconv.Itoa(n)))
	}

	kb := keyboard.NewBuilder().Grid(4, buttons...).AddCancelButton(FormCancel)
	return text, kb.Build()
}

// LecturesPickerScreen выбор числа занятий в неделю
func LecturesPickerScreen(cache *catalog.Cache, form service.SubjectForm) (string, *models.InlineKeyboardMarkup) {
	text := formHeader(form, cache) +
		fmt.Sprintf("Шаг 4 из 5: Сколько занятий в неделю у каждой группы (%d-%d)?\n\n"+
			"Выберите кнопкой или отправьте число.", service.MinLecturesPerWeek, service.MaxLecturesPerWeek)

	buttons := make([]models.InlineKeyboardButton, 0, 7)
	for n := service.MinLecturesPerWeek; n <= 7; n++ {
		buttons = append(buttons, keyboard.Button(strconv.Itoa(n), FormLectures+strconv.Itoa(n)))
	}

	kb := keyboard.NewBuilder().Grid(4, buttons...).AddCancelButton(FormCancel)
	return text, kb.Build()
}

// ScopePickerScreen выбор режима групп
func ScopePickerScreen(cache *catalog.Cache, form service.SubjectForm) (string, *models.InlineKeyboardMarkup) {
	text := formHeader(form, cache) + "Шаг 5 из 5: Для каких групп этот предмет?"

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("👥 Все группы", FormScope+string(model.ScopeAll))).
		Row(keyboard.Button("☑️ Только выбранные", FormScope+string(model.ScopeSpecific))).
		Row(keyboard.Button("🚫 Все, кроме выбранных", FormScope+string(model.ScopeExclude))).
		AddCancelButton(FormCancel)

	return text, kb.Build()
}

// SectionPickerScreen выбор групп для режимов SPECIFIC и EXCLUDE
func SectionPickerScreen(cache *catalog.Cache, form service.SubjectForm, page int) (string, *models.InlineKeyboardMarkup) {
	sections := cache.Snapshot().Sections
	from, to, page, pages := PageBounds(len(sections), page, sectionPageSize)

	prompt := "Выберите группы, для которых нужен предмет."
	if form.Scope == model.ScopeExclude {
		prompt = "Выберите группы, которые нужно исключить."
	}
	text := formHeader(form, cache) + prompt +
		fmt.Sprintf("\n\nВыбрано: %d %s", len(form.SelectedSections), formatting.PluralizeSections(len(form.SelectedSections)))

	buttons := make([]models.InlineKeyboardButton, 0, to-from)
	for _, s := range sections[from:to] {
		buttons = append(buttons, keyboard.ToggleButton(s.Name, form.HasSection(s.ID), FormSection+strconv.FormatInt(s.ID, 10)))
	}

	kb := keyboard.NewBuilder().Grid(2, buttons...)
	kb.AddPagination(FormSectionPage, page, pages)
	kb.Row(keyboard.DoneButton(FormSectionDone))
	kb.Row(keyboard.BackButton(FormBackToScope), keyboard.CancelButton(FormCancel))

	return text, kb.Build()
}

// SubmitResultText сообщение после добавления предмета в очередь
func SubmitResultText(result service.UpsertResult, subject model.SubjectRequest) string {
	if result == service.Updated {
		return fmt.Sprintf("🔄 Предмет «%s» уже был в очереди для этих групп, данные обновлены.", html.EscapeString(subject.Name))
	}
	return fmt.Sprintf("✅ Предмет «%s» добавлен в очередь.", html.EscapeString(subject.Name))
}

// QueueScreen очередь предметов с кнопками удаления и генерации
func QueueScreen(queue []model.SubjectRequest, cache *catalog.Cache) (string, *models.InlineKeyboardMarkup) {
	if len(queue) == 0 {
		kb := keyboard.NewBuilder().Row(keyboard.Button("➕ Добавить предмет", QueueAdd))
		return "📭 Очередь пуста.\n\nДобавьте первый предмет: /addsubject", kb.Build()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 <b>Очередь: %d %s</b>\n", len(queue), formatting.PluralizeSubjects(len(queue))))

	removeButtons := make([]models.InlineKeyboardButton, 0, len(queue))
	for i, item := range queue {
		removeButtons = append(removeButtons, keyboard.Button(fmt.Sprintf("🗑 %d", i+1), QueueRemove+strconv.Itoa(i)))

		block := "\n" + formatting.FormatQueueItem(i+1, item,
			cache.FacultyNames(item.FacultyIDs),
			cache.SectionNames(item.ResolvedSections)) + "\n"

		if utf8.RuneCountInString(sb.String())+utf8.RuneCountInString(block) > maxScreenLength {
			sb.WriteString(fmt.Sprintf("\n… и ещё %d %s", len(queue)-i, formatting.PluralizeSubjects(len(queue)-i)))
			break
		}
		sb.WriteString(block)
	}

	kb := keyboard.NewBuilder().
		Grid(5, removeButtons...).
		Row(keyboard.Button("➕ Добавить", QueueAdd), keyboard.Button("🚀 Сгенерировать", QueueGenerate)).
		Row(keyboard.Button("🧹 Очистить очередь", QueueClear))

	return sb.String(), kb.Build()
}

// TimetableKeyboard список групп сгенерированного расписания
func TimetableKeyboard(run *model.TimetableRun, sections []string, page int) *models.InlineKeyboardMarkup {
	from, to, page, pages := PageBounds(len(sections), page, timetablePageSize)

	buttons := make([]models.InlineKeyboardButton, 0, to-from)
	for i := from; i < to; i++ {
		buttons = append(buttons, keyboard.Button(sections[i], fmt.Sprintf("%s%d:%d", TimetableSection, run.ID, i)))
	}

	kb := keyboard.NewBuilder().Grid(3, buttons...)
	kb.AddPagination(fmt.Sprintf("%s%d:", TimetablePage, run.ID), page, pages)

	tools := []models.InlineKeyboardButton{
		keyboard.Button("🔍 Найти группу", fmt.Sprintf("%s%d", TimetableSearch, run.ID)),
	}
	if run.Result != nil && len(run.Result.SkippedSlots) > 0 {
		tools = append(tools, keyboard.Button(
			fmt.Sprintf("⚠️ Пропущено (%d)", len(run.Result.SkippedSlots)),
			fmt.Sprintf("%s%d", TimetableSkipped, run.ID)))
	}
	kb.Row(tools...)

	return kb.Build()
}

// TimetableScreen экран выбора группы
func TimetableScreen(run *model.TimetableRun, sections []string, page int) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🗂 <b>Расписание от %s</b>\n\n", run.CreatedAt.Format("02.01.2006 15:04"))
	if len(sections) == 0 {
		text += "В расписании нет ни одной группы."
	} else {
		text += fmt.Sprintf("%d %s. Выберите группу:", len(sections), formatting.PluralizeSections(len(sections)))
	}
	return text, TimetableKeyboard(run, sections, page)
}

// SectionScreen занятия одной группы
func SectionScreen(runID int64, index int, section string, entries []model.TimetableEntry) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()
	if len(entries) > 0 {
		kb.Row(keyboard.Button("🖼 Неделя картинкой", fmt.Sprintf("%s%d:%d", TimetableImage, runID, index)))
	}
	kb.AddBackButton(TimetablePageData(runID, index/timetablePageSize))

	return formatting.SectionTimetable(section, entries), kb.Build()
}

// SearchResultsScreen результаты поиска группы
func SearchResultsScreen(runID int64, query string, matches, allSections []string) (string, *models.InlineKeyboardMarkup) {
	index := make(map[string]int, len(allSections))
	for i, name := range allSections {
		index[name] = i
	}

	kb := keyboard.NewBuilder()
	if len(matches) == 0 {
		kb.AddBackButton(TimetablePageData(runID, 0))
		return fmt.Sprintf("🔍 По запросу «%s» групп не найдено.\n\nОтправьте другой запрос или вернитесь к списку.",
			html.EscapeString(query)), kb.Build()
	}

	shown := matches
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}

	buttons := make([]models.InlineKeyboardButton, 0, len(shown))
	for _, name := range shown {
		buttons = append(buttons, keyboard.Button(name, fmt.Sprintf("%s%d:%d", TimetableSection, runID, index[name])))
	}
	kb.Grid(3, buttons...)
	kb.AddBackButton(TimetablePageData(runID, 0))

	text := fmt.Sprintf("🔍 По запросу «%s»: %d %s", html.EscapeString(query), len(matches), formatting.PluralizeSections(len(matches)))
	if len(matches) > len(shown) {
		text += fmt.Sprintf("\nПоказаны первые %d, уточните запрос.", len(shown))
	}
	return text, kb.Build()
}

// SkippedScreen занятия, которые не удалось разместить
func SkippedScreen(run *model.TimetableRun, cache *catalog.Cache) (string, *models.InlineKeyboardMarkup) {
	var skipped []model.SkippedSlot
	if run.Result != nil {
		skipped = run.Result.SkippedSlots
	}

	kb := keyboard.NewBuilder().AddBackButton(TimetablePageData(run.ID, 0))
	return formatting.SkippedSlots(skipped, cache.SectionName), kb.Build()
}

// GenerationScreen сообщение после успешной генерации с выбором группы
func GenerationScreen(run *model.TimetableRun, sections []string) (string, *models.InlineKeyboardMarkup) {
	return formatting.GenerationSummary(run, len(sections)), TimetableKeyboard(run, sections, 0)
}

// GenerationFailedText сообщение о неудачной генерации
func GenerationFailedText(err error, hasPrevious bool) string {
	text := ErrorMessage(err)
	if hasPrevious {
		text += "\n\nПредыдущее расписание по-прежнему доступно: /timetable"
	}
	return text
}

// SearchPrompt приглашение к поиску группы
func SearchPrompt() string {
	return "🔍 Отправьте часть названия группы.\n\nДля выхода из поиска используйте /cancel"
}

// CatalogSummaryText сводка по справочнику после /reload
func CatalogSummaryText(catalog *model.Catalog) string {
	return fmt.Sprintf("🔄 <b>Справочник обновлён</b>\n\n"+
		"👨‍🏫 Преподавателей: %d\n"+
		"👥 Групп: %d\n"+
		"🚪 Аудиторий: %d\n"+
		"🕘 Слотов: %d",
		len(catalog.Faculty), len(catalog.Sections), len(catalog.Rooms), len(catalog.TimeSlots))
}
