package handler

import (
	"time"
)

func (h *Handler) ExportSchedule(w *ResponseWriter, r *Request) {
	path := r.Args
	if path == "" {
		path = h.config.Schedule.ExportPath
	}

	if err := h.scheduler.ExportSchedule(path); err != nil {
		h.domainError(w, r, err)
		return
	}
	h.successResponse(w, r, "日程已导出到 "+path, nil)
}

func (h *Handler) ExportWorkbook(w *ResponseWriter, r *Request) {
	req := struct {
		Path string `validate:"required"`
	}{
		Path: r.Args,
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.scheduler.ExportWorkbook(req.Path); err != nil {
		h.domainError(w, r, err)
		return
	}
	h.successResponse(w, r, "工作簿已导出到 "+req.Path, nil)
}

func (h *Handler) ExportCalendar(w *ResponseWriter, r *Request) {
	req := struct {
		Path string `validate:"required"`
	}{
		Path: r.Args,
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	termStart, err := h.config.TermStart(time.Now())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	if err := h.scheduler.ExportCalendar(req.Path, termStart, h.config.Calendar.Weeks); err != nil {
		h.domainError(w, r, err)
		return
	}
	h.successResponse(w, r, "日历已导出到 "+req.Path, nil)
}
