package handler

import (
	"strings"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

func (h *Handler) ShowCatalog(w *ResponseWriter, r *Request) {
	h.successResponse(w, r, "", TableData{
		Header: domain.ShortDisplayHeader,
		Rows:   h.scheduler.CatalogTable(),
	})
}

func (h *Handler) SearchCatalog(w *ResponseWriter, r *Request) {
	req := struct {
		Keyword string `validate:"required"`
	}{
		Keyword: r.Args,
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	courses := h.scheduler.SearchCatalog(req.Keyword)
	rows := make([][]string, len(courses))
	for i, c := range courses {
		rows[i] = c.ShortDisplayArray()
	}
	h.successResponse(w, r, "", TableData{Header: domain.ShortDisplayHeader, Rows: rows})
}

func (h *Handler) AddCourse(w *ResponseWriter, r *Request) {
	fields := strings.Fields(r.Args)
	if len(fields) != 2 {
		h.errorResponse(w, r, "用法: add <课程代码> <班号>")
		return
	}

	req := struct {
		Name    string `validate:"required"`
		Section string `validate:"required,len=3,number"`
	}{
		Name:    fields[0],
		Section: fields[1],
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	added, err := h.scheduler.AddCourse(req.Name, req.Section)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	if !added {
		h.errorResponse(w, r, "课程目录中没有 "+req.Name+"-"+req.Section)
		return
	}

	h.successResponse(w, r, "已添加课程 "+req.Name+"-"+req.Section, nil)
}
