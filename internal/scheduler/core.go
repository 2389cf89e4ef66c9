package scheduler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

// admit 依次和日程中的每一项比较，先查重复再查冲突，遇到第一个问题立即返回；
// 全部通过后才追加到日程末尾
func (s *Scheduler) admit(candidate domain.Activity) error {
	for _, existing := range s.schedule {
		if existing.IsDuplicate(candidate) {
			s.logger.Debug("重复的活动", zap.String("candidate", candidate.Title()), zap.String("existing", existing.Title()))
			return &domain.DuplicateError{Message: duplicateMessage(candidate)}
		}

		if err := candidate.CheckConflict(existing); err != nil {
			s.logger.Debug("时间冲突", zap.String("candidate", candidate.MeetingString()), zap.String("existing", existing.MeetingString()))
			return &domain.ConflictError{Message: conflictMessage(candidate, existing)}
		}
	}

	s.schedule = append(s.schedule, candidate)
	return nil
}

func duplicateMessage(candidate domain.Activity) string {
	switch v := candidate.(type) {
	case *domain.Course:
		return fmt.Sprintf("已经选择了课程 %s", v.Name())
	default:
		return fmt.Sprintf("已经存在名为 %s 的事件", candidate.Title())
	}
}

func conflictMessage(candidate domain.Activity, existing domain.Activity) string {
	kind := "事件"
	if _, ok := candidate.(*domain.Course); ok {
		kind = "课程"
	}
	return fmt.Sprintf("无法添加该%s：与日程中的 %s（%s）时间冲突", kind, existing.Title(), existing.MeetingString())
}
