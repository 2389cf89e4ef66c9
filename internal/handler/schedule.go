package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/scheduler"
)

func (h *Handler) AddEvent(w *ResponseWriter, r *Request) {
	parts := strings.Split(r.Args, "|")
	if len(parts) == 5 {
		// 详情可以省略
		parts = append(parts, "")
	}
	if len(parts) != 6 {
		h.errorResponse(w, r, "用法: event <标题>|<上课日>|<开始>|<结束>|<重复周数>|<详情>")
		return
	}
	for i := range parts[:5] {
		parts[i] = strings.TrimSpace(parts[i])
	}

	numbers := make([]int, 3)
	for i, label := range []string{"开始时间", "结束时间", "重复周数"} {
		n, err := strconv.Atoi(parts[2+i])
		if err != nil {
			h.errorResponse(w, r, label+"必须是整数")
			return
		}
		numbers[i] = n
	}

	req := struct {
		Title        string `validate:"required"`
		MeetingDays  string `validate:"required"`
		StartTime    int    `validate:"gte=0,lte=2359"`
		EndTime      int    `validate:"gte=0,lte=2359"`
		WeeklyRepeat int    `validate:"gte=1,lte=4"`
		EventDetails string
	}{
		Title:        parts[0],
		MeetingDays:  strings.ToUpper(parts[1]),
		StartTime:    numbers[0],
		EndTime:      numbers[1],
		WeeklyRepeat: numbers[2],
		EventDetails: parts[5],
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.scheduler.AddEvent(req.Title, req.MeetingDays, req.StartTime, req.EndTime, req.WeeklyRepeat, req.EventDetails); err != nil {
		h.domainError(w, r, err)
		return
	}

	h.successResponse(w, r, "已添加事件 "+req.Title, nil)
}

func (h *Handler) RemoveActivity(w *ResponseWriter, r *Request) {
	n, err := strconv.Atoi(r.Args)
	if err != nil {
		h.errorResponse(w, r, "序号必须是整数")
		return
	}

	// 展示给用户的序号从 1 开始
	if !h.scheduler.RemoveActivity(n - 1) {
		h.errorResponse(w, r, fmt.Sprintf("日程中没有第 %d 项", n))
		return
	}

	h.successResponse(w, r, fmt.Sprintf("已移除第 %d 项", n), nil)
}

func (h *Handler) ResetSchedule(w *ResponseWriter, r *Request) {
	h.scheduler.ResetSchedule()
	h.successResponse(w, r, "日程已清空", nil)
}

func (h *Handler) Title(w *ResponseWriter, r *Request) {
	if r.Args == "" {
		h.successResponse(w, r, "", h.scheduler.Title())
		return
	}

	if err := h.scheduler.SetTitle(r.Args); err != nil {
		h.domainError(w, r, err)
		return
	}
	h.successResponse(w, r, "日程标题已修改为 "+r.Args, nil)
}

func (h *Handler) ShowSchedule(w *ResponseWriter, r *Request) {
	h.successResponse(w, r, h.scheduler.Title(), numberedTable(domain.ShortDisplayHeader, h.scheduler.ScheduleShortTable()))
}

func (h *Handler) ShowFullSchedule(w *ResponseWriter, r *Request) {
	h.successResponse(w, r, h.scheduler.Title(), numberedTable(domain.LongDisplayHeader, h.scheduler.ScheduleFullTable()))
}

func (h *Handler) Credits(w *ResponseWriter, r *Request) {
	h.successResponse(w, r, "总学分", h.scheduler.TotalCredits())
}

func (h *Handler) CheckSchedule(w *ResponseWriter, r *Request) {
	if err := h.scheduler.Validate(); err != nil {
		h.domainError(w, r, err)
		return
	}
	h.successResponse(w, r, "日程中没有重复或冲突", nil)
}

// numberedTable 在第一列加上从 1 开始的序号，和 remove 命令使用的序号一致
func numberedTable(header []string, table scheduler.Table) TableData {
	rows := make([][]string, len(table))
	for i, row := range table {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
	}
	return TableData{
		Header: append([]string{"#"}, header...),
		Rows:   rows,
	}
}
