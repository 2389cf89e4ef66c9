package domain

import (
	"fmt"
	"strings"
)

const (
	// ArrangedDays 表示没有固定上课时间（时间另行安排）
	ArrangedDays = "A"

	arrangedMeetingString = "Arranged"
	maxMilitaryTime       = 2359
	maxMinute             = 59
)

// 和 ShortDisplayArray / LongDisplayArray 的列一一对应
var (
	ShortDisplayHeader = []string{"Name", "Section", "Title", "Meeting Information"}
	LongDisplayHeader  = []string{"Name", "Section", "Title", "Credits", "Instructor", "Meeting Information", "Event Details"}
)

// Meeting 描述一个活动占用的上课日和时间段，冲突检测只依赖这三个字段
type Meeting interface {
	MeetingDays() string
	StartTime() int
	EndTime() int
}

// Activity 日程中的一项活动，目前只有 Course 和 Event 两种
type Activity interface {
	Meeting

	Title() string
	SetTitle(title string) error
	SetMeetingDays(meetingDays string) error
	SetActivityTime(startTime int, endTime int) error
	SetMeetingDaysAndTime(meetingDays string, startTime int, endTime int) error

	// MeetingString 把上课日和 24 小时制时间转换成展示用的 12 小时制字符串
	MeetingString() string
	ShortDisplayArray() []string
	LongDisplayArray() []string

	IsDuplicate(other Activity) bool
	CheckConflict(other Activity) error

	Equal(other Activity) bool
	Hash() uint64
	// String 返回写入导出文件的一行，字段用逗号分隔
	String() string
}

// activity 是 Course 和 Event 共用的部分
type activity struct {
	title       string
	meetingDays string
	startTime   int
	endTime     int
}

func (a *activity) Title() string {
	return a.title
}

func (a *activity) MeetingDays() string {
	return a.meetingDays
}

func (a *activity) StartTime() int {
	return a.startTime
}

func (a *activity) EndTime() int {
	return a.endTime
}

func (a *activity) SetTitle(title string) error {
	if err := validateField("标题", title, "required"); err != nil {
		return err
	}
	if err := validateRecordText("标题", title); err != nil {
		return err
	}
	a.title = title
	return nil
}

// setMeeting 先用子类型的规则校验上课日，再校验时间，全部通过后才一起赋值
func (a *activity) setMeeting(meetingDays string, startTime int, endTime int, checkDays func(string) error) error {
	if err := checkDays(meetingDays); err != nil {
		return err
	}
	if err := validateActivityTime(meetingDays, startTime, endTime); err != nil {
		return err
	}

	a.meetingDays = meetingDays
	a.startTime = startTime
	a.endTime = endTime
	return nil
}

func (a *activity) CheckConflict(other Activity) error {
	return CheckConflict(a, other)
}

func (a *activity) meetingString() string {
	if a.meetingDays == ArrangedDays {
		return arrangedMeetingString
	}
	return fmt.Sprintf("%s %s-%s", a.meetingDays, formatStandardTime(a.startTime), formatStandardTime(a.endTime))
}

func validateActivityTime(meetingDays string, startTime int, endTime int) error {
	if meetingDays == ArrangedDays && (startTime != 0 || endTime != 0) {
		return newValidationError("上课时间", "在时间另行安排（A）时开始和结束时间必须都为0")
	}
	if err := validateMilitaryTime("开始时间", startTime); err != nil {
		return err
	}
	if err := validateMilitaryTime("结束时间", endTime); err != nil {
		return err
	}
	if startTime > endTime {
		return newValidationError("开始时间", "不能晚于结束时间")
	}
	return nil
}

// validateMilitaryTime 校验 HHMM 形式的 24 小时制时间
func validateMilitaryTime(field string, t int) error {
	if t < 0 || t > maxMilitaryTime {
		return newValidationError(field, fmt.Sprintf("必须在0到%d之间", maxMilitaryTime))
	}
	if t%100 > maxMinute {
		return newValidationError(field, fmt.Sprintf("的分钟必须在0到%d之间", maxMinute))
	}
	return nil
}

// formatStandardTime 1330 -> "1:30PM"，0 -> "12:00AM"，1200 -> "12:00PM"
func formatStandardTime(t int) string {
	hour := t / 100
	minute := t % 100

	suffix := "AM"
	switch {
	case hour > 12:
		hour -= 12
		suffix = "PM"
	case hour == 12:
		suffix = "PM"
	case hour == 0:
		hour = 12
	}

	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}

// validateRecordText 导出文件用逗号分隔字段、一行一个活动，除最后一列外的文本字段不能包含逗号和换行
func validateRecordText(field string, value string) error {
	if strings.ContainsAny(value, ",\r\n") {
		return newValidationError(field, "不能包含逗号或换行符")
	}
	return nil
}

func validateDayLetters(field string, meetingDays string, allowed string) error {
	if err := validateField(field, meetingDays, "required"); err != nil {
		return err
	}
	for _, day := range meetingDays {
		if !strings.ContainsRune(allowed, day) {
			return newValidationError(field, fmt.Sprintf("只能包含 %s 中的字母，不能包含 %q", allowed, day))
		}
	}
	return nil
}
