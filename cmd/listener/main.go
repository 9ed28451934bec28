package main

import (
	"github.com/sergeizaitcev/metricsender/internal/listener"
	"github.com/sergeizaitcev/metricsender/pkg/commands"
)

func main() {
	commands.Execute("listener", listener.Run)
}
