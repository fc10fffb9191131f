package serializer

import (
	"time"

	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

const (
	// TriggerSourceSerializer 数据包的合成来源标记
	TriggerSourceSerializer = "serializer"

	// DataFormatStructured 数据包的固定格式标记
	DataFormatStructured = "structured"
)

// buildDataFlow 为每个节点生成一份初始数据流包
// 所有字段都是占位值，节点实际运行后由执行引擎覆盖；
// 一次调用内的所有包共享同一个执行ID
func (s *Serializer) buildDataFlow(nodes []SerializedNode, workflowID string) map[string]*DataPacket {
	executionID := s.idGen.ExecutionID()
	now := time.Now()

	flow := make(map[string]*DataPacket, len(nodes))
	for i := range nodes {
		n := &nodes[i]

		// 触发类型占位：仅手动触发节点为manual，其余为schedule
		triggerType := "schedule"
		if n.Type == graph.NodeManualTrigger {
			triggerType = "manual"
		}

		pkt := &DataPacket{
			Trigger: TriggerInfo{
				Type:      triggerType,
				Timestamp: now,
				Source:    TriggerSourceSerializer,
			},
			Data: DataInfo{
				Type:   graph.InferDataType(n.Type),
				Value:  n.Config,
				Format: DataFormatStructured,
			},
			Context: ContextInfo{
				WorkflowID:  workflowID,
				ExecutionID: executionID,
				NodeID:      n.ID,
			},
			Meta: MetaInfo{
				Success:    true,
				DurationMS: 0,
				NodeType:   n.Type,
			},
		}

		// 父节点 = 首个依赖；多个前驱时取先出现者，入口节点为空
		if len(n.Dependencies) > 0 {
			pkt.Context.ParentNodeID = n.Dependencies[0]
		}

		flow[n.ID] = pkt
	}
	return flow
}
