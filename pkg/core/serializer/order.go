package serializer

// 三色标记：白色=未访问，灰色=正在访问，黑色=已完成
const (
	colorWhite = iota
	colorGray
	colorBlack
)

// frame 显式DFS栈帧，避免大图上的递归深度限制
type frame struct {
	id   string
	next int // 下一个待访问的依赖下标
}

// resolveExecutionOrder 计算全局执行顺序
// 后序追加：节点的所有依赖完成后才入列，保证每条边(u→v)满足u先于v
// 入口遍历顺序：先按数组顺序访问零依赖节点（通常是触发节点），再补齐剩余节点；
// 同层节点保持作者的数组顺序，不按ID或其他派生键重排
func resolveExecutionOrder(nodes []SerializedNode) ([]string, error) {
	if len(nodes) == 0 {
		return []string{}, nil
	}

	deps := make(map[string][]string, len(nodes))
	entryCount := 0
	for i := range nodes {
		deps[nodes[i].ID] = nodes[i].Dependencies
		if len(nodes[i].Dependencies) == 0 {
			entryCount++
		}
	}

	state := make(map[string]int, len(nodes))
	order := make([]string, 0, len(nodes))

	visit := func(start string) error {
		if state[start] != colorWhite {
			return nil
		}
		state[start] = colorGray
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			ds := deps[f.id]

			if f.next < len(ds) {
				d := ds[f.next]
				f.next++

				// 依赖指向图中不存在的节点：跳过，与未知模板同样降级处理
				if _, known := deps[d]; !known {
					continue
				}

				switch state[d] {
				case colorWhite:
					state[d] = colorGray
					stack = append(stack, frame{id: d})
				case colorGray:
					// 灰色依赖意味着后向边，存在循环
					return &CycleError{NodeID: d}
				}
				continue
			}

			// 所有依赖已完成，后序入列
			state[f.id] = colorBlack
			order = append(order, f.id)
			stack = stack[:len(stack)-1]
		}
		return nil
	}

	for i := range nodes {
		if len(nodes[i].Dependencies) == 0 {
			if err := visit(nodes[i].ID); err != nil {
				return nil, err
			}
		}
	}
	for i := range nodes {
		if err := visit(nodes[i].ID); err != nil {
			return nil, err
		}
	}

	// 有节点但没有零依赖节点：整体失败，不返回部分顺序
	// 循环判定优先于入口判定，纯环形图报的是循环而非缺少入口
	if entryCount == 0 {
		return nil, &NoEntryPointError{}
	}

	return order, nil
}
