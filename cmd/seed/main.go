package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/config"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/logger"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/repository"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/seed"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/utils"
)

func main() {
	var op int
	var n int
	var input string
	var output string
	var events int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 生成随机课程目录, 2: 转换教务系统导出的 CSV, 3: 从课程目录生成示例日程)")
	flag.IntVar(&n, "n", 0, "生成的课程数量，默认使用 SEED_COUNT")
	flag.StringVar(&input, "input", "", "输入文件 (op 2 为 CSV 文件，op 3 为课程目录，默认使用 CATALOG_PATH)")
	flag.IntVar(&events, "events", -1, "op 3 追加的随机事件数量，默认使用 SEED_EVENTS")
	flag.StringVar(&output, "output", "", "输出文件，op 1 和 op 2 默认使用 SEED_OUTPUT，op 3 默认使用 SEED_SCHEDULE_OUTPUT")
	flag.Parse()

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "无法读取配置:", err)
		os.Exit(1)
	}
	if n == 0 {
		n = cfg.Seed.Count
	}
	if events < 0 {
		events = cfg.Seed.Events
	}
	if output == "" {
		output = cfg.Seed.Output
		if op == 3 {
			output = cfg.Seed.ScheduleOutput
		}
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	repo := repository.NewRepository(cfg, log)

	// 执行操作
	switch op {
	case 0:
		log.Error("未指定操作")
	case 1:
		if n <= 0 || n > utils.MaxRandomCatalogSize {
			log.Error("请输入合法的课程数量", zap.Int("max", utils.MaxRandomCatalogSize))
			return
		}
		if err := seed.SeedRandomCatalog(repo, log, n, output); err != nil {
			log.Error("无法生成随机课程目录", zap.Error(err))
		}
	case 2:
		if input == "" {
			log.Error("请使用 -input 指定 CSV 文件")
			return
		}
		if err := seed.SeedRegistrarData(repo, log, input, output); err != nil {
			log.Error("无法转换教务数据", zap.Error(err))
		}
	case 3:
		if input == "" {
			input = cfg.Catalog.Path
		}
		if n <= 0 {
			log.Error("请输入合法的课程数量")
			return
		}
		if err := seed.SeedSampleSchedule(repo, log, input, n, events, output); err != nil {
			log.Error("无法生成示例日程", zap.Error(err))
		}
	default:
		log.Error("指定的操作非法")
	}
}
