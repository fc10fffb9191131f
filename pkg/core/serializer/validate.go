package serializer

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

// Validate 校验工作流的结构完整性
// 永不抛错：所有问题一次性收集返回，供编辑器一并展示
func (s *Serializer) Validate(wf *SerializedWorkflow) ValidationResult {
	errors := make([]string, 0)

	// 节点是否出现在任意边上（源或目标）
	touched := make(map[string]bool)
	for _, e := range wf.Edges {
		touched[e.Source] = true
		touched[e.Target] = true
	}

	for i := range wf.Nodes {
		n := &wf.Nodes[i]

		// 孤立节点：非触发类型、零依赖且不在任何边上
		if !graph.IsTriggerType(n.Type) && len(n.Dependencies) == 0 && !touched[n.ID] {
			errors = append(errors, fmt.Sprintf("孤立节点: %s 未与工作流的其他部分连接", n.Label))
		}

		// 必需输入端口未连接
		for _, in := range n.Inputs {
			if in.Required && !in.Connected {
				errors = append(errors, fmt.Sprintf("节点 %s 缺少必需输入: %s", n.Label, in.Name))
			}
		}

		// 定时触发节点的cron表达式可解析性
		if n.Type == graph.NodeScheduleTrigger {
			if expr, ok := n.Config["cron"].(string); ok && expr != "" {
				if _, err := cron.ParseStandard(expr); err != nil {
					errors = append(errors, fmt.Sprintf("节点 %s 的cron表达式无效: %v", n.Label, err))
				}
			}
		}
	}

	// 结构性循环：复用执行顺序解析器，失败以错误文本收集而非抛出
	if _, err := resolveExecutionOrder(wf.Nodes); err != nil {
		errors = append(errors, err.Error())
	}

	return ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}
