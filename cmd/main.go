package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/app"
)

const appName = "jyotish"

func main() {
	cfg, err := app.NewEnvConfig("JYOTISH")
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(appName, cfg)

	if err := app.Run(ctx); err != nil {
		panic(err)
	}
}
