package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourse(t *testing.T, meetingDays string, startTime int, endTime int) *Course {
	t.Helper()
	c, err := NewCourse("CSC216", "Programming Concepts - Java", "001", 4, "sesmith5", meetingDays, startTime, endTime)
	require.NoError(t, err)
	return c
}

// parseStandardTime 把 "1:30PM" 还原成 1330
func parseStandardTime(t *testing.T, s string) int {
	t.Helper()
	suffix := s[len(s)-2:]
	parts := strings.Split(s[:len(s)-2], ":")
	require.Len(t, parts, 2)

	hour, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	minute, err := strconv.Atoi(parts[1])
	require.NoError(t, err)

	switch {
	case suffix == "AM" && hour == 12:
		hour = 0
	case suffix == "PM" && hour != 12:
		hour += 12
	}
	return hour*100 + minute
}

func TestSetActivityTime(t *testing.T) {
	tests := []struct {
		name      string
		startTime int
		endTime   int
		wantErr   bool
	}{
		{"正常时间", 1330, 1445, false},
		{"开始等于结束", 800, 800, false},
		{"全天范围", 0, 2359, false},
		{"开始时间为负", -1, 1445, true},
		{"结束时间超过2359", 1330, 2400, true},
		{"开始分钟超过59", 1360, 1445, true},
		{"结束分钟超过59", 1330, 1475, true},
		{"开始晚于结束", 1500, 1445, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCourse(t, "MW", 1000, 1100)

			err := c.SetActivityTime(tt.startTime, tt.endTime)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.Error())
				// 校验失败时原来的时间保持不变
				assert.Equal(t, 1000, c.StartTime())
				assert.Equal(t, 1100, c.EndTime())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.startTime, c.StartTime())
			assert.Equal(t, tt.endTime, c.EndTime())
		})
	}
}

func TestSetActivityTimeArranged(t *testing.T) {
	c, err := NewArrangedCourse("CSC216", "Programming Concepts - Java", "601", 4, "jep")
	require.NoError(t, err)

	require.Error(t, c.SetActivityTime(0, 1000))
	require.Error(t, c.SetActivityTime(1000, 0))
	require.Error(t, c.SetActivityTime(900, 1000))
	require.NoError(t, c.SetActivityTime(0, 0))
	assert.Equal(t, "Arranged", c.MeetingString())
}

func TestMeetingString(t *testing.T) {
	tests := []struct {
		meetingDays string
		startTime   int
		endTime     int
		want        string
	}{
		{"MW", 1330, 1445, "MW 1:30PM-2:45PM"},
		{"TH", 800, 915, "TH 8:00AM-9:15AM"},
		{"F", 0, 5, "F 12:00AM-12:05AM"},
		{"M", 1200, 1259, "M 12:00PM-12:59PM"},
		{"W", 1100, 2359, "W 11:00AM-11:59PM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c := newTestCourse(t, tt.meetingDays, tt.startTime, tt.endTime)
			assert.Equal(t, tt.want, c.MeetingString())
		})
	}
}

func TestMeetingStringRoundTrip(t *testing.T) {
	c := newTestCourse(t, "M", 0, 0)

	for start := 0; start <= 2359; start += 7 {
		if start%100 > 59 {
			continue
		}
		end := 2359
		require.NoError(t, c.SetActivityTime(start, end))

		s := c.MeetingString()
		times := strings.SplitN(strings.TrimPrefix(s, "M "), "-", 2)
		require.Len(t, times, 2, s)
		assert.Equal(t, start, parseStandardTime(t, times[0]), s)
		assert.Equal(t, end, parseStandardTime(t, times[1]), s)
	}
}

func TestSetTitle(t *testing.T) {
	c := newTestCourse(t, "MW", 1330, 1445)

	var validationErr *ValidationError
	require.ErrorAs(t, c.SetTitle(""), &validationErr)
	assert.Equal(t, "Programming Concepts - Java", c.Title())

	require.NoError(t, c.SetTitle("Software Development Fundamentals"))
	assert.Equal(t, "Software Development Fundamentals", c.Title())
}

func TestValidationErrorMessageIsReadable(t *testing.T) {
	_, err := NewCourse("CSC", "Programming Concepts - Java", "001", 4, "sesmith5", "MW", 1330, 1445)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "课程代码", validationErr.Field)
	assert.True(t, strings.HasPrefix(validationErr.Error(), "课程代码"), fmt.Sprintf("message: %s", validationErr.Error()))
}

func TestExportedTextRejectsSeparators(t *testing.T) {
	var validationErr *ValidationError

	_, err := NewEvent("Lunch, then gym", "M", 1200, 1300, 1, "details")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "标题", validationErr.Field)

	_, err = NewCourse("CSC230", "C, and Software Tools", "001", 3, "dbsturgi", "MW", 1145, 1300)
	require.ErrorAs(t, err, &validationErr)

	_, err = NewCourse("CSC230", "C and Software Tools", "001", 3, "dbs,turgi", "MW", 1145, 1300)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "教师", validationErr.Field)

	c := newTestCourse(t, "MW", 1330, 1445)
	require.ErrorAs(t, c.SetTitle("line\nbreak"), &validationErr)
	assert.Equal(t, "Programming Concepts - Java", c.Title())

	// 事件详情是导出行的最后一列，可以包含逗号
	e, err := NewEvent("Lunch", "M", 1200, 1300, 1, "salad, soup")
	require.NoError(t, err)
	assert.Equal(t, "Lunch,M,1200,1300,1,salad, soup", e.String())
}
