package repository

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/domain"
)

// WriteActivityRecords 按顺序把每个活动的 String() 写成一行，文件已存在时直接覆盖
func (r *Repository) WriteActivityRecords(path string, activities []domain.Activity) error {
	lines := make([]fmt.Stringer, len(activities))
	for i, a := range activities {
		lines[i] = a
	}
	return r.writeLines(path, lines)
}

func (r *Repository) writeLines(path string, lines []fmt.Stringer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}
	defer func() {
		// Close 的错误也要报告，否则写入可能没有真正落盘
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &domain.SaveError{Path: path, Err: closeErr}
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return &domain.SaveError{Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &domain.SaveError{Path: path, Err: err}
	}

	r.logger.Info("文件已保存", zap.String("path", path), zap.Int("lines", len(lines)))
	return nil
}
