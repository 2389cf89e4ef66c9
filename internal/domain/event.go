package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const eventMeetingDayLetters = "UMTWHFS"

// Event 用户自己添加的事件（例如学习小组），可以安排在一周中的任意一天
type Event struct {
	activity

	weeklyRepeat int
	eventDetails string
}

func NewEvent(title string, meetingDays string, startTime int, endTime int, weeklyRepeat int, eventDetails string) (*Event, error) {
	e := &Event{}

	if err := e.SetTitle(title); err != nil {
		return nil, err
	}
	if err := e.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	if err := e.SetWeeklyRepeat(weeklyRepeat); err != nil {
		return nil, err
	}
	if err := e.SetEventDetails(eventDetails); err != nil {
		return nil, err
	}

	return e, nil
}

// WeeklyRepeat 每隔多少周举行一次
func (e *Event) WeeklyRepeat() int {
	return e.weeklyRepeat
}

func (e *Event) EventDetails() string {
	return e.eventDetails
}

func (e *Event) SetWeeklyRepeat(weeklyRepeat int) error {
	if err := validateField("重复周数", weeklyRepeat, "gte=1,lte=4"); err != nil {
		return err
	}
	e.weeklyRepeat = weeklyRepeat
	return nil
}

// SetEventDetails 详情可以为空，但不能换行（导出文件一行对应一个活动）
func (e *Event) SetEventDetails(eventDetails string) error {
	if strings.ContainsAny(eventDetails, "\r\n") {
		return newValidationError("事件详情", "不能包含换行符")
	}
	e.eventDetails = eventDetails
	return nil
}

func (e *Event) SetMeetingDays(meetingDays string) error {
	return e.setMeeting(meetingDays, e.startTime, e.endTime, validateEventMeetingDays)
}

func (e *Event) SetActivityTime(startTime int, endTime int) error {
	return e.setMeeting(e.meetingDays, startTime, endTime, validateEventMeetingDays)
}

func (e *Event) SetMeetingDaysAndTime(meetingDays string, startTime int, endTime int) error {
	return e.setMeeting(meetingDays, startTime, endTime, validateEventMeetingDays)
}

// 事件可以在 U(周日) M T W H F S(周六) 中的任意几天举行，不支持 A
func validateEventMeetingDays(meetingDays string) error {
	return validateDayLetters("上课日", meetingDays, eventMeetingDayLetters)
}

func (e *Event) MeetingString() string {
	return fmt.Sprintf("%s (every %d weeks)", e.meetingString(), e.weeklyRepeat)
}

func (e *Event) ShortDisplayArray() []string {
	return []string{"", "", e.title, e.MeetingString()}
}

func (e *Event) LongDisplayArray() []string {
	return []string{"", "", e.title, "", "", e.MeetingString(), e.eventDetails}
}

// IsDuplicate 标题相同的两个事件视为重复，事件和课程之间永远不重复
func (e *Event) IsDuplicate(other Activity) bool {
	event, ok := other.(*Event)
	if !ok || event == nil {
		return false
	}
	return e.title == event.title
}

func (e *Event) Equal(other Activity) bool {
	event, ok := other.(*Event)
	if !ok || event == nil {
		return false
	}
	return e.activity == event.activity &&
		e.weeklyRepeat == event.weeklyRepeat &&
		e.eventDetails == event.eventDetails
}

func (e *Event) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("event\x00")
	_, _ = d.WriteString(e.String())
	return d.Sum64()
}

// String 形如 Study Group,TH,1330,1445,2,weekly review
func (e *Event) String() string {
	return strings.Join([]string{
		e.title,
		e.meetingDays,
		strconv.Itoa(e.startTime),
		strconv.Itoa(e.endTime),
		strconv.Itoa(e.weeklyRepeat),
		e.eventDetails,
	}, ",")
}
