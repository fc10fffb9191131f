// Package output CLI输出辅助
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Info 普通信息输出
func Info(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Success 成功信息输出（绿色）
func Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Printf("✓ "+format+"\n", args...)
}

// Warning 警告信息输出（黄色）
func Warning(format string, args ...interface{}) {
	color.New(color.FgYellow).Printf("! "+format+"\n", args...)
}

// Error 错误信息输出（红色，写到stderr）
func Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// PrintJSON 以缩进JSON输出任意结构
func PrintJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON编码失败: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
