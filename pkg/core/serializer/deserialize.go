package serializer

import (
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

// Deserialize 把序列化工作流还原为编辑器可加载的原始节点/边
// 逆向有损：执行顺序、数据流包等派生信息不回流，编辑器瞬态状态（如选中）本就不在定义中
func (s *Serializer) Deserialize(wf *SerializedWorkflow) ([]graph.RawNode, []graph.RawEdge) {
	nodes := make([]graph.RawNode, 0, len(wf.Nodes))
	for _, n := range wf.Nodes {
		nodes = append(nodes, graph.RawNode{
			ID:       n.ID,
			Type:     n.Type,
			Label:    n.Label,
			Position: n.Position, // 坐标原样保留
			Config:   copyConfig(n.Config),
		})
	}

	edges := make([]graph.RawEdge, 0, len(wf.Edges))
	for _, e := range wf.Edges {
		edges = append(edges, graph.RawEdge{
			ID:           e.ID,
			Source:       e.Source,
			Target:       e.Target,
			SourceHandle: e.SourceHandle,
			TargetHandle: e.TargetHandle,
		})
	}

	return nodes, edges
}
