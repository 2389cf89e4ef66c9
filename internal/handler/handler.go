package handler

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"go.uber.org/zap"

	"github.com/sysu-ecnc-dev/course-scheduler/internal/config"
	"github.com/sysu-ecnc-dev/course-scheduler/internal/scheduler"
)

// Request 一行用户输入，Name 是第一个单词，Args 是剩余部分（已去掉首尾空白）
type Request struct {
	ctx  context.Context
	Name string
	Args string
}

func (r *Request) Context() context.Context {
	return r.ctx
}

func (r *Request) WithContext(ctx context.Context) *Request {
	r2 := *r
	r2.ctx = ctx
	return &r2
}

type HandlerFunc func(w *ResponseWriter, r *Request)

type command struct {
	usage       string
	description string
	handle      HandlerFunc
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	scheduler  *scheduler.Scheduler
	translator ut.Translator
	logger     *zap.Logger

	out        io.Writer
	jsonOutput bool
	commands   map[string]command
	middleware []func(HandlerFunc) HandlerFunc
}

func NewHandler(cfg *config.Config, s *scheduler.Scheduler, logger *zap.Logger, out io.Writer, jsonOutput bool) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		scheduler:  s,
		translator: trans,
		logger:     logger,

		out:        out,
		jsonOutput: jsonOutput,
		commands:   make(map[string]command),
	}, nil
}

func (h *Handler) Use(mw func(HandlerFunc) HandlerFunc) {
	h.middleware = append(h.middleware, mw)
}

func (h *Handler) register(name string, usage string, description string, fn HandlerFunc) {
	h.commands[name] = command{usage: usage, description: description, handle: fn}
}

func (h *Handler) RegisterCommands() {
	h.Use(h.requestID)
	h.Use(h.accessLogger)
	h.Use(h.recoverer)

	// 课程目录
	h.register("catalog", "catalog", "显示课程目录", h.ShowCatalog)
	h.register("search", "search <关键字>", "按课程代码、标题或拼音搜索目录", h.SearchCatalog)
	h.register("add", "add <课程代码> <班号>", "把目录中的课程加入日程", h.AddCourse)

	// 日程
	h.register("event", "event <标题>|<上课日>|<开始>|<结束>|<重复周数>|<详情>", "添加事件，例如 event Study Group|TH|1330|1445|2|weekly review", h.AddEvent)
	h.register("remove", "remove <序号>", "移除日程中的第 n 项（从 1 开始）", h.RemoveActivity)
	h.register("reset", "reset", "清空日程", h.ResetSchedule)
	h.register("title", "title [标题]", "查看或修改日程标题", h.Title)
	h.register("show", "show", "显示日程", h.ShowSchedule)
	h.register("full", "full", "显示日程的全部信息", h.ShowFullSchedule)
	h.register("credits", "credits", "统计日程中的总学分", h.Credits)
	h.register("check", "check", "检查日程中是否存在重复或冲突", h.CheckSchedule)

	// 导出
	h.register("export", "export [路径]", "导出日程文本文件", h.ExportSchedule)
	h.register("workbook", "workbook <路径>", "导出 xlsx 工作簿", h.ExportWorkbook)
	h.register("calendar", "calendar <路径>", "导出 iCalendar 日历", h.ExportCalendar)

	h.register("help", "help", "显示帮助", h.Help)
}

// Handle 执行一行命令，返回 false 表示用户要求退出
func (h *Handler) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	if name == "quit" || name == "exit" {
		return false
	}

	if ctx == nil {
		ctx = context.Background()
	}
	req := &Request{ctx: ctx, Name: name, Args: strings.TrimSpace(args)}
	rw := &ResponseWriter{Writer: h.out}

	var next HandlerFunc = h.notFound
	if cmd, ok := h.commands[name]; ok {
		next = cmd.handle
	}
	for i := len(h.middleware) - 1; i >= 0; i-- {
		next = h.middleware[i](next)
	}
	next(rw, req)

	return true
}

func (h *Handler) notFound(w *ResponseWriter, r *Request) {
	h.errorResponse(w, r, "未知命令 "+r.Name+"，输入 help 查看所有命令")
}

func (h *Handler) Help(w *ResponseWriter, r *Request) {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names)+1)
	for _, name := range names {
		rows = append(rows, []string{h.commands[name].usage, h.commands[name].description})
	}
	rows = append(rows, []string{"quit", "退出"})

	h.successResponse(w, r, "", TableData{Header: []string{"命令", "说明"}, Rows: rows})
}
