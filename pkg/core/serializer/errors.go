package serializer

import "fmt"

// CycleError 检测到循环依赖，序列化中止
type CycleError struct {
	NodeID string // 回边指向的节点
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("检测到循环依赖: 节点 %s", e.NodeID)
}

// NoEntryPointError 图中存在节点但没有零依赖的入口节点，序列化中止
type NoEntryPointError struct{}

func (e *NoEntryPointError) Error() string {
	return "工作流缺少入口节点: 不存在零依赖节点"
}
