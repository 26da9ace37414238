package i18n

var chineseTranslations = map[string]string{
	// 应用生命周期
	"app.starting":   "正在启动 PPTX 示例生成器...",
	"app.output_dir": "输出目录: %s",
	"app.log_file":   "日志文件: %s",
	"app.done":       "全部示例文件生成完毕",

	// 导出操作
	"export.presentation_saved":  "演示文稿已保存为: %s",
	"export.workbook_saved":      "示例工作簿已保存为: %s",
	"export.document_saved":      "示例文档已保存为: %s",
	"export.report_saved":        "示例报告已保存为: %s",
	"export.presentation_failed": "演示文稿生成失败: %s",
	"export.companion_failed":    "配套文件 %s 生成失败: %s",

	// 生成历史
	"history.record_failed": "记录生成历史失败: %s",
	"history.total":         "累计已生成文件数: %d",

	// 配置
	"config.load_failed": "加载配置失败，使用默认配置: %s",
}
