package repository

import (
	"bufio"
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

const calendarProductID = "-//sysu-ecnc-dev//course-scheduler//ZH"

var weekdayByLetter = map[rune]rrule.Weekday{
	'U': rrule.SU,
	'M': rrule.MO,
	'T': rrule.TU,
	'W': rrule.WE,
	'H': rrule.TH,
	'F': rrule.FR,
	'S': rrule.SA,
}

// Occurrence 活动在日历上的一次具体安排
type Occurrence struct {
	Start time.Time
	End   time.Time
}

type CalendarOptions struct {
	Title     string
	TermStart time.Time // 学期第一天零点，时区决定上课时间的时区
	Weeks     int
	Stamp     time.Time // DTSTAMP，为零值时取当前时间
}

// ExpandOccurrences 把一个活动展开成从 termStart 开始 weeks 周内的所有具体时间。
// 课程每周一次，事件每 WeeklyRepeat 周一次，时间另行安排的课程没有任何安排
func ExpandOccurrences(a domain.Activity, termStart time.Time, weeks int) ([]Occurrence, error) {
	if a.MeetingDays() == domain.ArrangedDays || weeks <= 0 {
		return nil, nil
	}

	byWeekday := make([]rrule.Weekday, 0, len(a.MeetingDays()))
	for _, day := range a.MeetingDays() {
		wd, ok := weekdayByLetter[day]
		if !ok {
			return nil, fmt.Errorf("无法识别的上课日 %q", day)
		}
		byWeekday = append(byWeekday, wd)
	}

	interval := 1
	if e, ok := a.(*domain.Event); ok {
		interval = e.WeeklyRepeat()
	}

	dtstart := atMilitaryTime(termStart, a.StartTime())
	// UNTIL 是闭区间，减一秒把第 weeks+1 周的第一天排除在外
	until := termStart.AddDate(0, 0, 7*weeks).Add(-time.Second)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  interval,
		Wkst:      rrule.MO,
		Byweekday: byWeekday,
		Dtstart:   dtstart,
		Until:     until,
	})
	if err != nil {
		return nil, err
	}

	duration := atMilitaryTime(termStart, a.EndTime()).Sub(atMilitaryTime(termStart, a.StartTime()))
	starts := rule.All()
	occurrences := make([]Occurrence, len(starts))
	for i, start := range starts {
		occurrences[i] = Occurrence{Start: start, End: start.Add(duration)}
	}
	return occurrences, nil
}

func atMilitaryTime(day time.Time, militaryTime int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), militaryTime/100, militaryTime%100, 0, 0, day.Location())
}

// WriteCalendar 导出 iCalendar 文件，每次具体安排对应一个 VEVENT
func (r *Repository) WriteCalendar(path string, activities []domain.Activity, opts CalendarOptions) (err error) {
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	// 未指定学期开始或周数时使用配置
	if opts.TermStart.IsZero() {
		termStart, err := r.cfg.TermStart(stamp)
		if err != nil {
			return &domain.SaveError{Path: path, Err: err}
		}
		opts.TermStart = termStart
	}
	if opts.Weeks <= 0 {
		opts.Weeks = r.cfg.Calendar.Weeks
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName(opts.Title)
	cal.SetXWRTimezone(opts.TermStart.Location().String())

	total := 0
	for _, a := range activities {
		occurrences, err := ExpandOccurrences(a, opts.TermStart, opts.Weeks)
		if err != nil {
			return &domain.SaveError{Path: path, Err: err}
		}
		if len(occurrences) == 0 {
			r.logger.Debug("活动没有固定时间，不写入日历", zap.String("title", a.Title()))
			continue
		}

		for _, occ := range occurrences {
			// 同一个活动的同一次安排每次导出都得到相同的 UID，重复导入不会产生重复事件
			uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%016x/%s", a.Hash(), occ.Start.UTC().Format(time.RFC3339))))

			event := cal.AddEvent(uid.String())
			event.SetDtStampTime(stamp)
			event.SetStartAt(occ.Start)
			event.SetEndAt(occ.End)
			event.SetSummary(a.Title())
			event.SetDescription(calendarDescription(a))
			total++
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &domain.SaveError{Path: path, Err: closeErr}
		}
	}()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(cal.Serialize()); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	r.logger.Info("日历已保存", zap.String("path", path), zap.Int("events", total))
	return nil
}

func calendarDescription(a domain.Activity) string {
	switch v := a.(type) {
	case *domain.Course:
		return fmt.Sprintf("%s-%s %s (%d credits)", v.Name(), v.Section(), v.InstructorID(), v.Credits())
	case *domain.Event:
		return v.EventDetails()
	default:
		return a.MeetingString()
	}
}
