// Package ident 提供工作流/执行ID生成器
// 通过接口注入，测试可替换为确定性实现
package ident

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator ID生成器接口（对外导出）
type Generator interface {
	WorkflowID() string  // 生成工作流ID（每次序列化调用唯一）
	ExecutionID() string // 生成执行ID（一次调用内所有数据包共享同一个）
}

// UUIDGenerator 基于UUID的默认实现
type UUIDGenerator struct{}

// NewUUIDGenerator 创建UUID生成器
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// WorkflowID 生成工作流ID
func (g *UUIDGenerator) WorkflowID() string {
	return "workflow_" + uuid.NewString()
}

// ExecutionID 生成执行ID
func (g *UUIDGenerator) ExecutionID() string {
	return "exec_" + uuid.NewString()
}

// SequenceGenerator 单调计数器实现（测试用，输出确定）
type SequenceGenerator struct {
	counter atomic.Int64
}

// NewSequenceGenerator 创建计数器生成器
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// WorkflowID 生成工作流ID
func (g *SequenceGenerator) WorkflowID() string {
	return fmt.Sprintf("workflow_%d", g.counter.Add(1))
}

// ExecutionID 生成执行ID
func (g *SequenceGenerator) ExecutionID() string {
	return fmt.Sprintf("exec_%d", g.counter.Add(1))
}
