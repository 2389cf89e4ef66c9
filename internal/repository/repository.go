package repository

import (
	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/config"
)

// Repository 负责所有文件的读写：课程目录、导出的日程、工作簿和日历
type Repository struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewRepository(cfg *config.Config, logger *zap.Logger) *Repository {
	return &Repository{
		cfg:    cfg,
		logger: logger,
	}
}
