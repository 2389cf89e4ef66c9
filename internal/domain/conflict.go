package domain

// CheckConflict 判断两个活动是否无法同时参加：
// 先看上课日是否有交集（A 不占用任何一天），有交集时再比较时间段。
// 时间段恰好首尾相接（一个结束时另一个刚好开始）不算冲突。
// 检查是对称的，并且不会修改任何一方。
func CheckConflict(a Meeting, b Meeting) error {
	if !sharesMeetingDay(a.MeetingDays(), b.MeetingDays()) {
		return nil
	}

	if a.StartTime() < b.EndTime() && b.StartTime() < a.EndTime() {
		return &ConflictError{}
	}
	return nil
}

func meetingDaySet(meetingDays string) map[rune]struct{} {
	days := make(map[rune]struct{}, len(meetingDays))
	for _, day := range meetingDays {
		if string(day) == ArrangedDays {
			continue
		}
		days[day] = struct{}{}
	}
	return days
}

func sharesMeetingDay(x string, y string) bool {
	xDays := meetingDaySet(x)
	for day := range meetingDaySet(y) {
		if _, ok := xDays[day]; ok {
			return true
		}
	}
	return false
}
