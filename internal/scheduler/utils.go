package scheduler

import (
	"strings"

	"github.com/mozillazg/go-pinyin"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

// matchKeyword 不区分大小写地匹配课程代码、标题，以及标题中汉字的全拼或首字母
func matchKeyword(c *domain.Course, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}

	if strings.Contains(strings.ToLower(c.Name()), keyword) ||
		strings.Contains(strings.ToLower(c.Title()), keyword) {
		return true
	}

	syllables := pinyin.LazyConvert(c.Title(), nil)
	if len(syllables) == 0 {
		return false
	}

	var full, initials strings.Builder
	for _, syllable := range syllables {
		full.WriteString(syllable)
		initials.WriteByte(syllable[0])
	}
	return strings.Contains(full.String(), keyword) || strings.Contains(initials.String(), keyword)
}

// cloneActivity 复制一份活动，对外返回的快照不会影响日程本身
func cloneActivity(a domain.Activity) domain.Activity {
	switch v := a.(type) {
	case *domain.Course:
		c := *v
		return &c
	case *domain.Event:
		e := *v
		return &e
	default:
		return a
	}
}
