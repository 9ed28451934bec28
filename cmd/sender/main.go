package main

import (
	"github.com/sergeizaitcev/metricsender/internal/sender"
	"github.com/sergeizaitcev/metricsender/pkg/commands"
)

func main() {
	commands.Execute("sender", sender.Run)
}
