package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/config"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/handler"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/logger"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/repository"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/scheduler"

	_ "time/tzdata"
)

func main() {
	var catalogPath string
	var exportPath string
	var jsonOutput bool

	flag.StringVar(&catalogPath, "catalog", "", "课程目录文件路径，默认使用 CATALOG_PATH")
	flag.StringVar(&exportPath, "export", "", "export 命令的默认导出路径，默认使用 SCHEDULE_EXPORT_PATH")
	flag.BoolVar(&jsonOutput, "json", false, "以 JSON 格式输出每条命令的结果")
	flag.Parse()

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "无法加载配置:", err)
		os.Exit(1)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if exportPath != "" {
		cfg.Schedule.ExportPath = exportPath
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	/**********************************************
	 * 加载课程目录
	 **********************************************/
	repo := repository.NewRepository(cfg, log)
	s, err := scheduler.New(repo, log, cfg.Catalog.Path)
	if err != nil {
		log.Error("无法加载课程目录", zap.Error(err))
		os.Exit(1)
	}
	if err := s.SetTitle(cfg.Schedule.Title); err != nil {
		log.Error("日程标题不合法", zap.Error(err))
		os.Exit(1)
	}

	/**********************************************
	 * 创建 handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, s, log, os.Stdout, jsonOutput)
	if err != nil {
		log.Error("无法创建 handler", zap.Error(err))
		os.Exit(1)
	}
	h.RegisterCommands()

	/**********************************************
	 * 读取命令
	 **********************************************/
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("课程排程工具已启动", zap.String("environment", cfg.Environment), zap.String("catalog", cfg.Catalog.Path))
	if !jsonOutput {
		fmt.Println("输入 help 查看所有命令，输入 quit 退出")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if !jsonOutput {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil || !h.Handle(ctx, scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("读取输入失败", zap.Error(err))
	}

	log.Info("已退出")
}
