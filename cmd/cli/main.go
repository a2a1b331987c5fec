// Command jyotish-cli считает карту, даши и совместимость из командной строки
// через того же провайдера эфемерид, что и сервис.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/app"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

const appName = "jyotish-cli"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(envCore)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// envCore собирает ядро из переменных окружения JYOTISH_*
func envCore(ctx context.Context) (usecase.IAstroUseCase, func(), error) {
	cfg, err := app.NewEnvConfig("JYOTISH")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Kafka и джобы CLI не нужны
	cfg.Kafka.Enabled = false
	cfg.Jobs.Enabled = false

	a := app.New(appName, cfg)
	core, err := a.NewCore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return core.Astro, func() { core.Close(a.Log) }, nil
}
