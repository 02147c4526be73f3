// Package render рисует виды день и неделя в PNG.
package render

import (
	"bytes"
	"image/color"
	"time"

	"github.com/fogleman/gg"

	"github.com/Freeeeeet/booking_calendar/internal/grid"
	"github.com/Freeeeeet/booking_calendar/internal/locale"
	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Константы размеров и отступов
const (
	imageHeight      = 900
	dayColumnWidth   = 172
	headerHeight     = 100
	leftLabelsWidth  = 80
	legendWidth      = 140
	dayPaddingX      = 8
	minBlockHeight   = 8.0
	blockRadius      = 6.0
	shadowOffset     = 3.0
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultFirstHour = 8
	defaultLastHour  = 18
)

// Константы шрифтов
const (
	titleFontSize      = 25.0
	dayFontSize        = 22.0
	hourLabelFontSize  = 16.0
	blockTimeFontSize  = 15.0
	legendItemFontSize = 12.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{99, 102, 241, 60}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{228, 228, 231, 255}
	currentTimeColor = color.NRGBA{239, 68, 68, 200}
	conflictColor    = color.RGBA{220, 38, 38, 255}

	blockTextColor   = color.RGBA{20, 24, 28, 230}
	blockShadowColor = color.RGBA{0, 0, 0, 20}
	legendTextColor  = color.RGBA{70, 74, 78, 220}
)

// statusColors: изумрудный, янтарный, красный, индиго, серый
var statusColors = map[model.AppointmentStatus]color.RGBA{
	model.AppointmentStatusConfirmed: {110, 231, 183, 235},
	model.AppointmentStatusPending:   {252, 211, 77, 235},
	model.AppointmentStatusCancelled: {252, 165, 165, 220},
	model.AppointmentStatusCompleted: {165, 180, 252, 235},
	model.AppointmentStatusNoShow:    {203, 213, 225, 220},
}

var defaultBlockColor = color.RGBA{220, 220, 220, 200}

// Week - данные для отрисовки: 1 день (day view) или 7 дней (week view)
type Week struct {
	Title        string
	Days         []time.Time
	Appointments []model.Appointment
	Conflicting  map[string]bool
}

type Options struct {
	Locale    locale.Locale
	Directory model.Directory
	Now       time.Time
	// FirstHour/LastHour ограничивают строки, картинка подгоняется под занятые часы внутри
	FirstHour int
	LastHour  int
}

// hourRange содержит диапазон часов для отображения, end не включается
type hourRange struct {
	start int
	end   int
}

func (h hourRange) total() int { return h.end - h.start }

// block - прямоугольник записи на холсте
type block struct {
	appt     model.Appointment
	day      int
	x, y     float64
	width    float64
	height   float64
	conflict bool
}

// WeekImage рисует дни w с блоками записей в PNG
func WeekImage(w Week, opts Options) ([]byte, error) {
	hours := calculateHourRange(w.Appointments, opts.FirstHour, opts.LastHour)
	dayCount := len(w.Days)
	if dayCount == 0 {
		dayCount = 1
	}

	imageWidth := leftLabelsWidth + dayCount*dayColumnWidth + legendWidth
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total())

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	drawHeader(dc, w.Title)
	drawHourLabels(dc, hours, cellHeight)
	for i, day := range w.Days {
		x := float64(leftLabelsWidth + i*dayColumnWidth)
		isToday := !opts.Now.IsZero() && grid.IsSameDay(day, opts.Now)
		drawDayBackground(dc, x, dayHeight, i, isToday)
		drawDayHeader(dc, day, x, opts.Locale)
		drawHourLines(dc, x, hours, cellHeight)
	}
	for _, b := range layoutBlocks(w, hours, cellHeight) {
		drawBlock(dc, b, opts.Directory)
	}
	drawCurrentTimeLine(dc, w.Days, opts.Now, hours, cellHeight)
	drawLegend(dc, float64(leftLabelsWidth+dayCount*dayColumnWidth+10), opts.Locale)

	return encodeImage(dc)
}

// calculateHourRange подгоняет строки под записи с запасом в час в пределах [first, last)
// Без записей возвращает рабочий день
func calculateHourRange(appts []model.Appointment, first, last int) hourRange {
	if last <= first {
		first, last = 0, 24
	}

	minHour, maxHour := 24, 0
	for _, a := range appts {
		startH := a.Start.Hour()
		endH := a.End.Hour()
		if a.End.Minute() > 0 {
			endH++
		}
		if !grid.IsSameDay(a.Start, a.End) {
			endH = 24
		}
		minHour = min(minHour, startH)
		maxHour = max(maxHour, endH)
	}

	if minHour == 24 {
		minHour, maxHour = defaultFirstHour, defaultLastHour
	}

	start := max(first, minHour-hourPaddingTop)
	end := min(last, maxHour+hourPaddingBot)
	if end <= start {
		start, end = first, last
	}
	return hourRange{start: start, end: end}
}

// layoutBlocks размещает записи, начинающиеся в один из дней
func layoutBlocks(w Week, hours hourRange, cellHeight float64) []block {
	placement := grid.PlacementConfig{
		HourHeight:         cellHeight,
		MinDurationMinutes: grid.MinAppointmentDurationMinutes,
		MinHeight:          minBlockHeight,
		DayStartHour:       hours.start,
	}

	var blocks []block
	for i, day := range w.Days {
		for _, a := range grid.AppointmentsOnDay(w.Appointments, day) {
			p := placement.Place(a.Start, a.End)
			blocks = append(blocks, block{
				appt:     a,
				day:      i,
				x:        float64(leftLabelsWidth+i*dayColumnWidth) + dayPaddingX,
				y:        float64(headerHeight) + p.Top,
				width:    float64(dayColumnWidth - 2*dayPaddingX),
				height:   p.Height,
				conflict: w.Conflicting[a.ID],
			})
		}
	}
	return blocks
}

// drawHeader рисует заголовок периода
func drawHeader(dc *gg.Context, title string) {
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), float64(headerHeight)/4, 0, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleMedium)
	dc.SetColor(hourLabelColor)

	for i, label := range grid.TimeSlots(hours.start, hours.end, 60) {
		y := float64(headerHeight) + float64(i)*cellHeight
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x float64, dayHeight, dayIndex int, isToday bool) {
	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, float64(headerHeight), dayColumnWidth, float64(dayHeight))
	dc.Fill()
}

// drawDayHeader рисует день недели и число
func drawDayHeader(dc *gg.Context, date time.Time, x float64, loc locale.Locale) {
	loadFont(dc, dayFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(loc.DayHeader(date), x+dayColumnWidth/2, float64(headerHeight)-12, 0.5, 0)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x float64, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for i := 0; i <= hours.total(); i++ {
		hy := float64(headerHeight) + float64(i)*cellHeight
		dc.DrawLine(x, hy, x+dayColumnWidth, hy)
		dc.Stroke()
	}
}

// drawBlock рисует одну запись
func drawBlock(dc *gg.Context, b block, dir model.Directory) {
	fill := blockColor(b.appt.Status)
	h := max(b.height-4, 1)

	// Тень
	dc.SetColor(blockShadowColor)
	dc.DrawRoundedRectangle(b.x+shadowOffset, b.y+2+shadowOffset, b.width, h, blockRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(b.x, b.y+2, b.width, h, blockRadius)
	dc.Fill()

	// Рамка, у пересекающихся записей - красная
	if b.conflict {
		dc.SetColor(conflictColor)
		dc.SetLineWidth(2.5)
	} else {
		dc.SetColor(darkenColor(fill, 0.8))
		dc.SetLineWidth(1)
	}
	dc.DrawRoundedRectangle(b.x, b.y+2, b.width, h, blockRadius)
	dc.Stroke()

	loadFont(dc, blockTimeFontSize, FontStyleMedium)
	dc.SetColor(blockTextColor)
	txtX := b.x + 8
	txtY := b.y + 18
	dc.DrawStringAnchored(locale.FormatTimeRange(b.appt.Start, b.appt.End), txtX, txtY, 0, 0)

	if b.height > 38 {
		label := truncate(dir.Label(b.appt), 18)
		loadFont(dc, blockTimeFontSize-2, FontStyleDefault)
		dc.DrawStringAnchored(label, txtX, txtY+16, 0, 0)
	}
	if b.height > 56 {
		dc.DrawStringAnchored(truncate(dir.StaffName(b.appt.StaffID), 18), txtX, txtY+32, 0, 0)
	}
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes-3]) + "..."
}

// blockColor возвращает цвет записи по статусу
func blockColor(status model.AppointmentStatus) color.RGBA {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return defaultBlockColor
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

// drawCurrentTimeLine рисует линию текущего времени в колонке сегодняшнего дня
func drawCurrentTimeLine(dc *gg.Context, days []time.Time, now time.Time, hours hourRange, cellHeight float64) {
	if now.IsZero() {
		return
	}
	for i, day := range days {
		if !grid.IsSameDay(day, now) {
			continue
		}
		currentHour := float64(now.Hour()) + float64(now.Minute())/60.0
		if currentHour < float64(hours.start) || currentHour > float64(hours.end) {
			return
		}

		y := float64(headerHeight) + (currentHour-float64(hours.start))*cellHeight
		x := float64(leftLabelsWidth + i*dayColumnWidth)
		dc.SetColor(currentTimeColor)
		dc.SetLineWidth(2.0)
		dc.DrawLine(x, y, x+dayColumnWidth, y)
		dc.Stroke()
		return
	}
}

// drawLegend рисует легенду статусов справа
func drawLegend(dc *gg.Context, x float64, loc locale.Locale) {
	const boxW, boxH = 20.0, 14.0
	y := float64(imageHeight) - 160.0

	for _, status := range model.AllAppointmentStatuses() {
		dc.SetColor(blockColor(status))
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		loadFont(dc, legendItemFontSize, FontStyleDefault)
		dc.SetColor(legendTextColor)
		dc.DrawStringAnchored(loc.Status(status), x+boxW+8, y+boxH/2+1, 0, 0.2)
		y += boxH + 14
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
