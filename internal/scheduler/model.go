package scheduler

// Table 行优先的字符串表格，供展示层渲染；没有数据时是零行的表格
type Table [][]string

const (
	// DefaultScheduleTitle 新建或重置日程时没有指定标题时使用
	DefaultScheduleTitle = "My Schedule"
)
