package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

// ResponseWriter 记录本次命令是否成功，供日志中间件使用
type ResponseWriter struct {
	io.Writer
	Success bool
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// TableData 文本模式下按列对齐输出
type TableData struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func (h *Handler) logInternalError(r *Request, err error) {
	h.logger.Error("内部错误", zap.String("command", r.Name), zap.Error(err))
}

func (h *Handler) writeResponse(w *ResponseWriter, r *Request, resp Response) {
	w.Success = resp.Success

	var err error
	if h.jsonOutput {
		err = json.NewEncoder(w).Encode(resp)
	} else {
		err = writeText(w, resp)
	}
	if err != nil {
		h.logInternalError(r, err)
	}
}

func writeText(w io.Writer, resp Response) error {
	if !resp.Success {
		_, err := fmt.Fprintf(w, "错误: %s\n", resp.Message)
		return err
	}

	if resp.Message != "" {
		if _, err := fmt.Fprintln(w, resp.Message); err != nil {
			return err
		}
	}

	switch data := resp.Data.(type) {
	case nil:
		return nil
	case TableData:
		return writeTable(w, data)
	default:
		_, err := fmt.Fprintln(w, data)
		return err
	}
}

func writeTable(w io.Writer, table TableData) error {
	if len(table.Rows) == 0 {
		_, err := fmt.Fprintln(w, "（空）")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeRow := func(cols []string) {
		for i, col := range cols {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, col)
		}
		fmt.Fprintln(tw)
	}

	writeRow(table.Header)
	for _, row := range table.Rows {
		writeRow(row)
	}
	return tw.Flush()
}

func (h *Handler) errorResponse(w *ResponseWriter, r *Request, msg string) {
	h.writeResponse(w, r, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w *ResponseWriter, r *Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
}

// domainError 业务错误直接把信息展示给用户，其余错误作为内部错误处理
func (h *Handler) domainError(w *ResponseWriter, r *Request, err error) {
	var (
		validationErr *domain.ValidationError
		duplicateErr  *domain.DuplicateError
		conflictErr   *domain.ConflictError
		saveErr       *domain.SaveError
		loadErr       *domain.LoadError
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &duplicateErr),
		errors.As(err, &conflictErr),
		errors.As(err, &saveErr),
		errors.As(err, &loadErr):
		h.errorResponse(w, r, err.Error())
	default:
		h.internalError(w, r, err)
	}
}

func (h *Handler) internalError(w *ResponseWriter, r *Request, err error) {
	h.logInternalError(r, err)
	h.writeResponse(w, r, Response{
		Success: false,
		Message: "内部错误",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w *ResponseWriter, r *Request, msg string, data any) {
	h.writeResponse(w, r, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}
