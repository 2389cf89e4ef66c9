package domain

import (
	"errors"
	"fmt"
)

// ErrCatalogNotFound 课程目录文件无法打开
var ErrCatalogNotFound = errors.New("找不到课程目录文件")

const defaultConflictMessage = "日程冲突"

// ValidationError 表示某个字段没有通过校验，出错时实体的状态不会被修改
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field string, msg string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: field + msg,
	}
}

// ConflictError 两个活动的上课日和时间存在重叠
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return defaultConflictMessage
	}
	return e.Message
}

// DuplicateError 待添加的活动与日程中已有的活动重复
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

// LoadError 课程目录文件无法打开或读取
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("无法加载课程目录 %s: %v", e.Path, e.Err)
}

// errors.Is(err, ErrCatalogNotFound) 和 errors.Is(err, fs.ErrNotExist) 都成立
func (e *LoadError) Unwrap() []error {
	return []error{ErrCatalogNotFound, e.Err}
}

// SaveError 导出文件无法写入
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("无法保存文件 %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
