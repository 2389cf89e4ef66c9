package utils

import (
	"fmt"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

// ValidateScheduleActivities 两两检查日程中的活动，报告第一对重复或冲突的活动（下标从 1 开始）
func ValidateScheduleActivities(activities []domain.Activity) error {
	for i := 0; i < len(activities); i++ {
		for j := i + 1; j < len(activities); j++ {
			if activities[i].IsDuplicate(activities[j]) {
				return &domain.DuplicateError{
					Message: fmt.Sprintf("第 %d 项和第 %d 项重复", i+1, j+1),
				}
			}
			if err := activities[i].CheckConflict(activities[j]); err != nil {
				return &domain.ConflictError{
					Message: fmt.Sprintf("第 %d 项和第 %d 项时间冲突", i+1, j+1),
				}
			}
		}
	}
	return nil
}

// ValidateCourseCatalog 检查目录中是否存在课程代码和班号都相同的课程
func ValidateCourseCatalog(courses []*domain.Course) error {
	seen := make(map[string]int, len(courses))
	for i, c := range courses {
		key := c.Name() + "-" + c.Section()
		if j, ok := seen[key]; ok {
			return &domain.DuplicateError{
				Message: fmt.Sprintf("第 %d 项和第 %d 项都是 %s", j+1, i+1, key),
			}
		}
		seen[key] = i
	}
	return nil
}
