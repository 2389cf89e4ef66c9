package handler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) requestID(next HandlerFunc) HandlerFunc {
	return func(w *ResponseWriter, r *Request) {
		ctx := context.WithValue(r.Context(), RequestIDCtxKey, uuid.NewString())
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) accessLogger(next HandlerFunc) HandlerFunc {
	return func(w *ResponseWriter, r *Request) {
		start := time.Now()
		next(w, r)
		duration := time.Since(start)

		requestID, _ := r.Context().Value(RequestIDCtxKey).(string)
		h.logger.Debug("已处理命令",
			zap.String("request_id", requestID),
			zap.String("command", r.Name),
			zap.Bool("success", w.Success),
			zap.Duration("duration", duration),
		)
	}
}

func (h *Handler) recoverer(next HandlerFunc) HandlerFunc {
	return func(w *ResponseWriter, r *Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalError(w, r, fmt.Errorf("panic: %v", err))
				h.logger.Debug("panic 堆栈", zap.String("stack", string(debug.Stack())))
			}
		}()
		next(w, r)
	}
}
