package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/go-playground/validator/v10"
)

// Ограничения формы предмета
const (
	MaxSubjectNameLength = 100
	MinSlotDuration      = 1
	MaxSlotDuration      = 8
	MinLecturesPerWeek   = 1
	MaxLecturesPerWeek   = 14
)

// SubjectForm черновик предмета, который пользователь заполняет в диалоге
type SubjectForm struct {
	Name             string             `form:"name" validate:"required,max=100"`
	FacultyIDs       []int64            `form:"faculty" validate:"required,min=1,dive,gt=0"`
	SlotDuration     int                `form:"duration" validate:"gte=1,lte=8"`
	LecturesPerWeek  int                `form:"lectures" validate:"gte=1,lte=14"`
	Scope            model.SectionScope `form:"scope" validate:"required,oneof=ALL SPECIFIC EXCLUDE"`
	SelectedSections []int64            `form:"sections"`
}

var formValidate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate проверяет поля формы и возвращает первую ошибку как *ValidationError
func (f *SubjectForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)

	err := formValidate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate subject form: %w", err)
	}

	fe := fieldErrs[0]
	return newValidationError(fe.Field(), formErrorMessage(fe))
}

func formErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "min":
		return "select at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "invalid value"
	}
}

// Build проверяет форму и применяет режим групп к текущему справочнику.
// Группы вычисляются в момент отправки, поэтому обновление справочника
// между выбором и отправкой учитывается.
func (f *SubjectForm) Build(catalog *model.Catalog) (model.SubjectRequest, error) {
	if catalog == nil {
		return model.SubjectRequest{}, ErrCatalogNotReady
	}
	if err := f.Validate(); err != nil {
		return model.SubjectRequest{}, err
	}

	resolved, err := ResolveSections(f.Scope, f.SelectedSections, catalog.Sections)
	if err != nil {
		return model.SubjectRequest{}, err
	}

	return model.SubjectRequest{
		Name:             f.Name,
		FacultyIDs:       append([]int64(nil), f.FacultyIDs...),
		SlotDuration:     f.SlotDuration,
		LecturesPerWeek:  f.LecturesPerWeek,
		SectionScope:     f.Scope,
		ResolvedSections: resolved,
	}, nil
}

// ToggleFaculty добавляет или убирает преподавателя из выбора
func (f *SubjectForm) ToggleFaculty(id int64) {
	f.FacultyIDs = toggleID(f.FacultyIDs, id)
}

// ToggleSection добавляет или убирает группу из выбора
func (f *SubjectForm) ToggleSection(id int64) {
	f.SelectedSections = toggleID(f.SelectedSections, id)
}

func toggleID(ids []int64, id int64) []int64 {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func containsID(ids []int64, id int64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// HasFaculty сообщает, выбран ли преподаватель
func (f *SubjectForm) HasFaculty(id int64) bool {
	return containsID(f.FacultyIDs, id)
}

// HasSection сообщает, выбрана ли группа
func (f *SubjectForm) HasSection(id int64) bool {
	return containsID(f.SelectedSections, id)
}

// CheckName проверяет название отдельно от остальной формы (шаг диалога)
func CheckName(name string) error {
	return checkVar("name", strings.TrimSpace(name), "required,max=100")
}

// CheckSlotDuration проверяет длительность занятия в слотах
func CheckSlotDuration(n int) error {
	return checkVar("duration", n, "gte=1,lte=8")
}

// CheckLecturesPerWeek проверяет число занятий в неделю
func CheckLecturesPerWeek(n int) error {
	return checkVar("lectures", n, "gte=1,lte=14")
}

func checkVar(field string, value interface{}, tag string) error {
	err := formValidate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %s: %w", field, err)
	}
	return newValidationError(field, formErrorMessage(fieldErrs[0]))
}
