package main

import (
	"github.com/LENAX/autoflow-engine/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
