package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/LENAX/autoflow-engine/pkg/cli/output"
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

var (
	serializeInput  string
	serializeOutput string
	serializeName   string
)

// graphFile 编辑器导出的画布图文件结构
type graphFile struct {
	Name  string          `json:"name"`
	Nodes []graph.RawNode `json:"nodes"`
	Edges []graph.RawEdge `json:"edges"`
}

// serializeCmd serialize命令
var serializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: "序列化画布图为可执行工作流",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(serializeInput)
		if err != nil {
			output.Error("读取画布文件失败: %v", err)
			return err
		}

		var file graphFile
		if err := json.Unmarshal(data, &file); err != nil {
			output.Error("解析画布文件失败: %v", err)
			return err
		}

		name := serializeName
		if name == "" {
			name = file.Name
		}

		engine, _, err := newEngine()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		wf, err := engine.Serialize(file.Nodes, file.Edges, name)
		if err != nil {
			output.Error("序列化失败: %v", err)
			return err
		}

		result, err := json.MarshalIndent(wf, "", "  ")
		if err != nil {
			output.Error("JSON编码失败: %v", err)
			return err
		}

		if serializeOutput == "" {
			os.Stdout.Write(result)
			os.Stdout.WriteString("\n")
			return nil
		}

		if err := os.WriteFile(serializeOutput, result, 0644); err != nil {
			output.Error("写入输出文件失败: %v", err)
			return err
		}

		output.Success("序列化完成: %d个节点, %d条边, 执行顺序 %v", len(wf.Nodes), len(wf.Edges), wf.ExecutionOrder)
		output.Info("已写入 %s", serializeOutput)
		return nil
	},
}

func init() {
	serializeCmd.Flags().StringVarP(&serializeInput, "file", "f", "", "画布图JSON文件")
	serializeCmd.Flags().StringVarP(&serializeOutput, "output", "o", "", "输出文件（缺省输出到stdout）")
	serializeCmd.Flags().StringVarP(&serializeName, "name", "n", "", "工作流名称（覆盖文件内的名称）")
	serializeCmd.MarkFlagRequired("file")
}
