package serializer

import (
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

// transform 把原始节点/边转换为带端口连接状态与依赖列表的序列化表示
// 纯函数：只读输入与模板注册表，无副作用
func (s *Serializer) transform(nodes []graph.RawNode, edges []graph.RawEdge) ([]SerializedNode, []SerializedEdge) {
	// 节点ID -> 节点类型，供边的数据类型解析
	nodeTypes := make(map[string]string, len(nodes))
	for _, n := range nodes {
		nodeTypes[n.ID] = n.Type
	}

	sNodes := make([]SerializedNode, 0, len(nodes))
	for _, n := range nodes {
		// 未注册的节点类型按无端口处理，不报错（模板可能尚未注册）
		tpl, _ := s.registry.Lookup(n.Type)

		sn := SerializedNode{
			ID:           n.ID,
			Type:         n.Type,
			Label:        n.Label,
			Position:     n.Position,
			Config:       copyConfig(n.Config),
			Template:     tpl,
			Inputs:       []PortConnection{},
			Outputs:      []PortConnection{},
			Dependencies: []string{},
		}

		if tpl != nil {
			for _, p := range tpl.Inputs {
				conn := PortConnection{
					ID:          p.ID,
					Name:        p.Name,
					Direction:   graph.DirectionInput,
					DataType:    p.DataType,
					Required:    p.Required,
					ConnectedTo: []string{},
				}
				// 连接状态：存在恰好落在该端口ID上的边
				for _, e := range edges {
					if e.Target == n.ID && e.TargetHandle == p.ID {
						conn.Connected = true
						conn.ConnectedTo = append(conn.ConnectedTo, e.Source)
					}
				}
				sn.Inputs = append(sn.Inputs, conn)
			}

			for _, p := range tpl.Outputs {
				conn := PortConnection{
					ID:          p.ID,
					Name:        p.Name,
					Direction:   graph.DirectionOutput,
					DataType:    p.DataType,
					ConnectedTo: []string{},
				}
				for _, e := range edges {
					if e.Source == n.ID && e.SourceHandle == p.ID {
						conn.Connected = true
						conn.ConnectedTo = append(conn.ConnectedTo, e.Target)
					}
				}
				sn.Outputs = append(sn.Outputs, conn)
			}
		}

		// 依赖 = 指向本节点的所有边的源节点ID，去重，保持边的声明顺序
		seen := make(map[string]bool)
		for _, e := range edges {
			if e.Target == n.ID && !seen[e.Source] {
				seen[e.Source] = true
				sn.Dependencies = append(sn.Dependencies, e.Source)
			}
		}

		sNodes = append(sNodes, sn)
	}

	sEdges := make([]SerializedEdge, 0, len(edges))
	for _, e := range edges {
		sEdges = append(sEdges, SerializedEdge{
			ID:           e.ID,
			Source:       e.Source,
			Target:       e.Target,
			SourceHandle: e.SourceHandle,
			TargetHandle: e.TargetHandle,
			DataType:     s.resolveEdgeDataType(e, nodeTypes),
		})
	}

	return sNodes, sEdges
}

// resolveEdgeDataType 按源节点模板的输出端口解析边的数据类型
// 源节点、模板或端口未知时回退为any
func (s *Serializer) resolveEdgeDataType(e graph.RawEdge, nodeTypes map[string]string) graph.DataType {
	nodeType, ok := nodeTypes[e.Source]
	if !ok {
		return graph.DataTypeAny
	}
	tpl, ok := s.registry.Lookup(nodeType)
	if !ok {
		return graph.DataTypeAny
	}
	for _, p := range tpl.Outputs {
		if p.ID == e.SourceHandle {
			return p.DataType
		}
	}
	return graph.DataTypeAny
}
