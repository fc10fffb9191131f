// Package cmd CLI命令定义
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LENAX/autoflow-engine/pkg/core/graph"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
	"github.com/LENAX/autoflow-engine/pkg/ident"
)

var (
	// 全局变量
	templatesFile string
	outputJSON    bool
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "autoflow",
	Short: "Autoflow CLI - 工作流序列化命令行工具",
	Long: `Autoflow CLI 是一个用于离线处理自动化工作流文件的命令行工具。

支持的功能：
  - 序列化编辑器导出的画布图（计算执行顺序与初始数据流）
  - 校验工作流的结构完整性（孤立节点、缺失输入、循环依赖）
  - 查看已注册的节点模板

使用示例：
  # 序列化画布图
  autoflow serialize -f graph.json -o workflow.json

  # 校验工作流
  autoflow validate -f workflow.json

  # 列出节点模板
  autoflow templates`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&templatesFile, "templates", "t", "", "节点模板叠加文件（YAML）")
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "使用JSON格式输出")

	// 添加子命令
	rootCmd.AddCommand(serializeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newEngine 按全局参数构建序列化引擎
func newEngine() (*serializer.Serializer, *graph.Registry, error) {
	registry := graph.NewRegistry()
	if templatesFile != "" {
		if err := registry.LoadFile(templatesFile); err != nil {
			return nil, nil, fmt.Errorf("加载模板文件失败: %w", err)
		}
	}
	return serializer.New(registry, ident.NewUUIDGenerator()), registry, nil
}
