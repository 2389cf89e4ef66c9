package scheduler

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/repository"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/utils"
)

// Scheduler 持有课程目录和用户的日程。目录在创建时加载一次，之后只读；
// 日程只能通过 Add/Remove/Reset 修改。一个 Scheduler 只供一个调用方使用
type Scheduler struct {
	repository *repository.Repository
	logger     *zap.Logger

	title    string
	catalog  []*domain.Course
	schedule []domain.Activity
}

func New(repo *repository.Repository, logger *zap.Logger, catalogPath string) (*Scheduler, error) {
	catalog, err := repo.ReadCourseRecords(catalogPath)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		repository: repo,
		logger:     logger,
		title:      DefaultScheduleTitle,
		catalog:    catalog,
		schedule:   make([]domain.Activity, 0),
	}, nil
}

func (s *Scheduler) Title() string {
	return s.title
}

// SetTitle 标题可以为空，但不能换行
func (s *Scheduler) SetTitle(title string) error {
	if strings.ContainsAny(title, "\r\n") {
		return &domain.ValidationError{Field: "日程标题", Message: "日程标题不能包含换行符"}
	}
	s.title = title
	return nil
}

// CourseFromCatalog 按课程代码和班号查找课程，返回的是副本
func (s *Scheduler) CourseFromCatalog(name string, section string) (*domain.Course, bool) {
	for _, c := range s.catalog {
		if c.Name() == name && c.Section() == section {
			course := *c
			return &course, true
		}
	}
	return nil, false
}

// SearchCatalog 按目录顺序返回匹配关键字的课程副本
func (s *Scheduler) SearchCatalog(keyword string) []*domain.Course {
	result := make([]*domain.Course, 0)
	for _, c := range s.catalog {
		if matchKeyword(c, keyword) {
			course := *c
			result = append(result, &course)
		}
	}
	return result
}

// AddCourse 把目录中的课程加入日程。目录中没有这门课时返回 false 且没有错误；
// 重复或冲突时返回 DuplicateError / ConflictError，日程保持不变
func (s *Scheduler) AddCourse(name string, section string) (bool, error) {
	course, ok := s.CourseFromCatalog(name, section)
	if !ok {
		s.logger.Debug("目录中没有该课程", zap.String("name", name), zap.String("section", section))
		return false, nil
	}

	if err := s.admit(course); err != nil {
		return false, err
	}

	s.logger.Info("已添加课程", zap.String("name", name), zap.String("section", section))
	return true, nil
}

func (s *Scheduler) AddEvent(title string, meetingDays string, startTime int, endTime int, weeklyRepeat int, eventDetails string) error {
	event, err := domain.NewEvent(title, meetingDays, startTime, endTime, weeklyRepeat, eventDetails)
	if err != nil {
		return err
	}

	if err := s.admit(event); err != nil {
		return err
	}

	s.logger.Info("已添加事件", zap.String("title", title), zap.String("meeting", event.MeetingString()))
	return nil
}

// RemoveActivity 下标越界（包括负数）时返回 false
func (s *Scheduler) RemoveActivity(idx int) bool {
	if idx < 0 || idx >= len(s.schedule) {
		return false
	}

	removed := s.schedule[idx]
	s.schedule = append(s.schedule[:idx], s.schedule[idx+1:]...)
	s.logger.Info("已移除活动", zap.Int("index", idx), zap.String("title", removed.Title()))
	return true
}

// ResetSchedule 清空日程，目录和标题不受影响
func (s *Scheduler) ResetSchedule() {
	s.schedule = make([]domain.Activity, 0)
	s.logger.Info("日程已清空")
}

func (s *Scheduler) ScheduleSize() int {
	return len(s.schedule)
}

// Activities 返回日程的快照
func (s *Scheduler) Activities() []domain.Activity {
	activities := make([]domain.Activity, len(s.schedule))
	for i, a := range s.schedule {
		activities[i] = cloneActivity(a)
	}
	return activities
}

// TotalCredits 日程中所有课程的学分之和，事件不计学分
func (s *Scheduler) TotalCredits() int {
	total := 0
	for _, a := range s.schedule {
		if c, ok := a.(*domain.Course); ok {
			total += c.Credits()
		}
	}
	return total
}

func (s *Scheduler) CatalogTable() Table {
	table := make(Table, len(s.catalog))
	for i, c := range s.catalog {
		table[i] = c.ShortDisplayArray()
	}
	return table
}

func (s *Scheduler) ScheduleShortTable() Table {
	table := make(Table, len(s.schedule))
	for i, a := range s.schedule {
		table[i] = a.ShortDisplayArray()
	}
	return table
}

func (s *Scheduler) ScheduleFullTable() Table {
	table := make(Table, len(s.schedule))
	for i, a := range s.schedule {
		table[i] = a.LongDisplayArray()
	}
	return table
}

// ExportSchedule 把日程写成每行一个活动的文本文件，失败时返回 SaveError
func (s *Scheduler) ExportSchedule(path string) error {
	return s.repository.WriteActivityRecords(path, s.schedule)
}

func (s *Scheduler) ExportWorkbook(path string) error {
	return s.repository.WriteWorkbook(path, s.title, s.schedule, s.catalog)
}

func (s *Scheduler) ExportCalendar(path string, termStart time.Time, weeks int) error {
	return s.repository.WriteCalendar(path, s.schedule, repository.CalendarOptions{
		Title:     s.title,
		TermStart: termStart,
		Weeks:     weeks,
	})
}

// Validate 重新检查整个日程中是否存在重复或冲突
func (s *Scheduler) Validate() error {
	return utils.ValidateScheduleActivities(s.schedule)
}
