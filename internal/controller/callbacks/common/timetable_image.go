package common

import (
	"bytes"
	"hash/fnv"
	"image/color"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = "" // Regular
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	imageWidth       = 1400
	imageHeight      = 900
	headerHeight     = 100
	leftLabelsWidth  = 80
	rightPadding     = 20
	dayPaddingX      = 6
	minBlockHeight   = 14.0
	blockRadius      = 6.0
	shadowOffset     = 3.0
	totalDaysInWeek  = 7
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultMinHour   = 8
	defaultMaxHour   = 18
	maxBlockTextRune = 22
)

// Константы шрифтов
const (
	titleFontSize     = 28.0
	dayFontSize       = 24.0
	hourLabelFontSize = 18.0
	blockTimeFontSize = 15.0
	blockTextFontSize = 14.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{225, 225, 225, 255}
	blockTextColor = color.RGBA{20, 24, 28, 230}
	shadowColor    = color.RGBA{0, 0, 0, 20}

	// Цвет блока выбирается по названию предмета, чтобы один предмет был одного цвета
	subjectPalette = []color.RGBA{
		{133, 193, 85, 220},
		{255, 182, 193, 255},
		{135, 190, 235, 230},
		{250, 205, 110, 230},
		{190, 160, 230, 230},
		{120, 210, 200, 230},
		{240, 150, 110, 230},
	}
)

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// placedEntry запись с разобранным днём и временем
type placedEntry struct {
	entry model.TimetableEntry
	day   int
	start float64 // часы от полуночи
	end   float64
}

var (
	fontsOnce   sync.Once
	parsedFonts map[FontStyle]*opentype.Font
)

func parseFonts() {
	parsedFonts = make(map[FontStyle]*opentype.Font)
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		parsedFonts[FontStyleDefault] = f
	}
	if f, err := opentype.Parse(gobold.TTF); err == nil {
		parsedFonts[FontStyleBold] = f
	}
}

// loadFont загружает шрифт указанного стиля или использует basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontsOnce.Do(parseFonts)

	parsed, ok := parsedFonts[style]
	if !ok {
		parsed, ok = parsedFonts[FontStyleDefault]
	}
	if ok {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	// fallback к встроенному шрифту
	dc.SetFontFace(basicfont.Face7x13)
}

// GenerateSectionWeekImage рисует недельную сетку занятий группы.
// Записи без известного дня или с неразборчивым временем на картинку не попадают.
func GenerateSectionWeekImage(section string, entries []model.TimetableEntry) ([]byte, error) {
	placed := placeEntries(entries)
	hours := calculateHourRange(placed)

	dc := createCanvas()
	dayWidth := (imageWidth - leftLabelsWidth - rightPadding) / totalDaysInWeek
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, section)
	drawHourLabels(dc, hours, cellHeight)

	for day := 0; day < totalDaysInWeek; day++ {
		x := float64(leftLabelsWidth + day*dayWidth)
		y := float64(headerHeight)

		drawDayBackground(dc, x, y, dayWidth, dayHeight, day)
		drawDayHeader(dc, day, x, y, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)
	}

	for _, p := range placed {
		x := float64(leftLabelsWidth + p.day*dayWidth)
		drawBlock(dc, p, x, float64(headerHeight), dayWidth, hours, cellHeight)
	}

	return encodeImage(dc)
}

func placeEntries(entries []model.TimetableEntry) []placedEntry {
	placed := make([]placedEntry, 0, len(entries))
	for _, e := range entries {
		day := service.DayIndex(e.Timeslot.Day)
		if day >= totalDaysInWeek {
			continue
		}
		start, okStart := parseClock(e.Timeslot.StartTime)
		end, okEnd := parseClock(e.Timeslot.EndTime)
		if !okStart {
			continue
		}
		if !okEnd || end <= start {
			end = start + 1
		}
		placed = append(placed, placedEntry{entry: e, day: day, start: start, end: end})
	}
	return placed
}

// parseClock переводит "09:30" или "09:30:00" в часы от полуночи
func parseClock(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.Hour()) + float64(t.Minute())/60.0, true
		}
	}
	return 0, false
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(placed []placedEntry) hourRange {
	minHour := 24
	maxHour := 0

	for _, p := range placed {
		startH := int(p.start)
		endH := int(p.end)
		if p.end > float64(endH) {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour,
	}
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок с названием группы
func drawHeader(dc *gg.Context, section string) {
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored("Группа "+section, float64(leftLabelsWidth), float64(headerHeight)/4, 0, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleDefault)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		dc.DrawStringAnchored(formatHourLabel(hours.start+hIdx), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int) {
	if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

// drawDayHeader рисует название дня недели
func drawDayHeader(dc *gg.Context, day int, x, y float64, dayWidth int) {
	loadFont(dc, dayFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(formatting.WeekdayShortNames()[day], x+float64(dayWidth)/2, y-10, 0.5, 0)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

// drawBlock рисует одно занятие
func drawBlock(dc *gg.Context, p placedEntry, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	blockY := y + (p.start-float64(hours.start))*cellHeight
	blockHeight := (p.end - p.start) * cellHeight
	if blockHeight < minBlockHeight {
		blockHeight = minBlockHeight
	}

	fillColor := subjectColor(p.entry.SubjectName)
	blockWidth := float64(dayWidth) - float64(dayPaddingX*2)

	// Тень
	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, blockY+2+shadowOffset, blockWidth, blockHeight-4, blockRadius)
	dc.Fill()

	// Основной блок
	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x+dayPaddingX, blockY+2, blockWidth, blockHeight-4, blockRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+dayPaddingX, blockY+2, blockWidth, blockHeight-4, blockRadius)
	dc.Stroke()

	txtX := x + dayPaddingX + 6
	txtY := blockY + 18

	loadFont(dc, blockTimeFontSize, FontStyleBold)
	dc.SetColor(blockTextColor)
	dc.DrawStringAnchored(formatting.FormatTimeRange(p.entry.Timeslot.StartTime, p.entry.Timeslot.EndTime), txtX, txtY, 0, 0)

	// Остальные строки рисуем, пока помещаются в блок
	lines := []string{p.entry.SubjectName, p.entry.Room.Label, p.entry.Faculty.Name}
	loadFont(dc, blockTextFontSize, FontStyleDefault)
	for _, line := range lines {
		if line == "" {
			continue
		}
		if txtY+18 > blockY+blockHeight-4 {
			break
		}
		txtY += 17
		dc.DrawStringAnchored(shorten(line, maxBlockTextRune), txtX, txtY, 0, 0)
	}
}

// subjectColor стабильный цвет для названия предмета
func subjectColor(subject string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(subject))
	return subjectPalette[h.Sum32()%uint32(len(subjectPalette))]
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// формат числа с двумя цифрами
func formatTwoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func formatHourLabel(h int) string {
	return formatTwoDigits(h) + ":00"
}
