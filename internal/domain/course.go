package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const courseMeetingDayLetters = "MTWHF"

// Course 课程目录中的一门课（某个班）
type Course struct {
	activity

	name         string
	section      string
	credits      int
	instructorID string
}

func NewCourse(name string, title string, section string, credits int, instructorID string, meetingDays string, startTime int, endTime int) (*Course, error) {
	c := &Course{}

	if err := c.SetTitle(title); err != nil {
		return nil, err
	}
	if err := c.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetSection(section); err != nil {
		return nil, err
	}
	if err := c.SetCredits(credits); err != nil {
		return nil, err
	}
	if err := c.SetInstructorID(instructorID); err != nil {
		return nil, err
	}

	return c, nil
}

// NewArrangedCourse 创建上课时间另行安排的课程，开始和结束时间都为 0
func NewArrangedCourse(name string, title string, section string, credits int, instructorID string) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, ArrangedDays, 0, 0)
}

func (c *Course) Name() string {
	return c.name
}

func (c *Course) Section() string {
	return c.section
}

func (c *Course) Credits() int {
	return c.credits
}

func (c *Course) InstructorID() string {
	return c.instructorID
}

func (c *Course) SetName(name string) error {
	if err := validateField("课程代码", name, "min=4,max=6"); err != nil {
		return err
	}
	if err := validateRecordText("课程代码", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Course) SetSection(section string) error {
	if err := validateField("班号", section, "len=3,number"); err != nil {
		return err
	}
	c.section = section
	return nil
}

func (c *Course) SetCredits(credits int) error {
	if err := validateField("学分", credits, "gte=1,lte=5"); err != nil {
		return err
	}
	c.credits = credits
	return nil
}

func (c *Course) SetInstructorID(instructorID string) error {
	if err := validateField("教师", instructorID, "required"); err != nil {
		return err
	}
	if err := validateRecordText("教师", instructorID); err != nil {
		return err
	}
	c.instructorID = instructorID
	return nil
}

func (c *Course) SetMeetingDays(meetingDays string) error {
	return c.setMeeting(meetingDays, c.startTime, c.endTime, validateCourseMeetingDays)
}

func (c *Course) SetActivityTime(startTime int, endTime int) error {
	return c.setMeeting(c.meetingDays, startTime, endTime, validateCourseMeetingDays)
}

func (c *Course) SetMeetingDaysAndTime(meetingDays string, startTime int, endTime int) error {
	return c.setMeeting(meetingDays, startTime, endTime, validateCourseMeetingDays)
}

// 课程只能在 M/T/W/H/F 上课，或者单独一个 A 表示时间另行安排
func validateCourseMeetingDays(meetingDays string) error {
	if meetingDays == ArrangedDays {
		return nil
	}
	return validateDayLetters("上课日", meetingDays, courseMeetingDayLetters)
}

func (c *Course) MeetingString() string {
	return c.meetingString()
}

func (c *Course) ShortDisplayArray() []string {
	return []string{c.name, c.section, c.title, c.MeetingString()}
}

func (c *Course) LongDisplayArray() []string {
	return []string{c.name, c.section, c.title, strconv.Itoa(c.credits), c.instructorID, c.MeetingString(), ""}
}

// IsDuplicate 课程代码相同即视为重复（不管班号），课程和事件之间永远不重复
func (c *Course) IsDuplicate(other Activity) bool {
	course, ok := other.(*Course)
	if !ok || course == nil {
		return false
	}
	return c.name == course.name
}

func (c *Course) Equal(other Activity) bool {
	course, ok := other.(*Course)
	if !ok || course == nil {
		return false
	}
	return c.activity == course.activity &&
		c.name == course.name &&
		c.section == course.section &&
		c.credits == course.credits &&
		c.instructorID == course.instructorID
}

func (c *Course) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("course\x00")
	_, _ = d.WriteString(c.String())
	return d.Sum64()
}

// String 形如 CSC216,Programming Concepts - Java,001,4,sesmith5,MW,1330,1445，
// 时间另行安排的课程不写开始和结束时间
func (c *Course) String() string {
	fields := []string{c.name, c.title, c.section, strconv.Itoa(c.credits), c.instructorID, c.meetingDays}
	if c.meetingDays != ArrangedDays {
		fields = append(fields, strconv.Itoa(c.startTime), strconv.Itoa(c.endTime))
	}
	return strings.Join(fields, ",")
}
