package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LENAX/autoflow-engine/pkg/cli/output"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
)

var validateInput string

// validateCmd validate命令
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "校验工作流的结构完整性",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(validateInput)
		if err != nil {
			output.Error("读取工作流文件失败: %v", err)
			return err
		}

		var wf serializer.SerializedWorkflow
		if err := json.Unmarshal(data, &wf); err != nil {
			output.Error("解析工作流文件失败: %v", err)
			return err
		}

		engine, _, err := newEngine()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		result := engine.Validate(&wf)

		if outputJSON {
			return output.PrintJSON(result)
		}

		if result.Valid {
			output.Success("工作流 %s 校验通过", wf.Name)
			return nil
		}

		output.Warning("工作流 %s 存在 %d 个问题:", wf.Name, len(result.Errors))
		for _, msg := range result.Errors {
			output.Error("%s", msg)
		}
		return fmt.Errorf("校验未通过")
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "file", "f", "", "序列化工作流JSON文件")
	validateCmd.MarkFlagRequired("file")
}
