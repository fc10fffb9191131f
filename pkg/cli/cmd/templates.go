package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LENAX/autoflow-engine/pkg/cli/output"
)

// templatesCmd templates命令
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "列出已注册的节点模板",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, registry, err := newEngine()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		templates := registry.List()

		if outputJSON {
			return output.PrintJSON(templates)
		}

		table := output.NewTable([]string{"TYPE", "NAME", "INPUTS", "OUTPUTS"})
		for _, tpl := range templates {
			table.AddRow([]string{
				tpl.Type,
				tpl.Name,
				fmt.Sprintf("%d", len(tpl.Inputs)),
				fmt.Sprintf("%d", len(tpl.Outputs)),
			})
		}
		table.Render()
		return nil
	},
}
