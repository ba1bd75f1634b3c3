package sessions

import (
	"time"

	"github.com/2beens/workoutlog/internal/workout/routines"
)

const PageSize = 3

func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// ClampPage keeps page inside [0, PageCount(total)-1]; 0 for an empty history.
func ClampPage(page, total int) int {
	last := PageCount(total) - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

type Page struct {
	Sessions  []Session `json:"sessions"`
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
	Total     int       `json:"total"`
	HasPrev   bool      `json:"hasPrev"`
	HasNext   bool      `json:"hasNext"`
}

// Paginate slices an already ordered history. Out of range pages are clamped.
func Paginate(list []Session, page int) Page {
	total := len(list)
	page = ClampPage(page, total)
	pageCount := PageCount(total)

	start := page * PageSize
	end := min(start+PageSize, total)

	sessions := make([]Session, 0, end-start)
	sessions = append(sessions, list[start:end]...)

	return Page{
		Sessions:  sessions,
		Page:      page,
		PageCount: pageCount,
		Total:     total,
		HasPrev:   page > 0,
		HasNext:   page < pageCount-1,
	}
}

// Pager walks the pages of a history of a fixed length. Moving past either
// end leaves it where it is.
type Pager struct {
	page  int
	total int
}

func NewPager(total, page int) *Pager {
	return &Pager{
		page:  ClampPage(page, total),
		total: total,
	}
}

func (p *Pager) Page() int {
	return p.page
}

func (p *Pager) Next() int {
	if p.page < PageCount(p.total)-1 {
		p.page++
	}
	return p.page
}

func (p *Pager) Prev() int {
	if p.page > 0 {
		p.page--
	}
	return p.page
}

type CalendarDay struct {
	Date       string `json:"date"`
	Logged     bool   `json:"logged"`
	Plannable  bool   `json:"plannable"`
	SessionIDs []int  `json:"sessionIds"`
}

// Decorate computes the state of one calendar tile. A day is logged when a
// session falls on it, and plannable when the selected routine has exercises
// on the selected training day. plan may be nil when no routine is selected.
func Decorate(sessions []Session, plan *routines.Plan, day int, date time.Time) CalendarDay {
	date = NormalizeDate(date)
	calendarDay := CalendarDay{
		Date:       date.Format(DateLayout),
		SessionIDs: []int{},
	}

	for _, s := range sessions {
		if SameDay(s.Date, date) {
			calendarDay.Logged = true
			calendarDay.SessionIDs = append(calendarDay.SessionIDs, s.ID)
		}
	}
	if plan != nil {
		calendarDay.Plannable = plan.HasExercisesOn(day)
	}

	return calendarDay
}

type DetailLine struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
}

func Details(session Session) []DetailLine {
	lines := make([]DetailLine, 0, len(session.Entries))
	for _, e := range session.Entries {
		lines = append(lines, DetailLine{
			ExerciseName: e.ExerciseName,
			Weight:       e.Weight,
		})
	}
	return lines
}
