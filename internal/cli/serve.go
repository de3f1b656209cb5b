package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/amterp/paintbox/internal/api"
	"github.com/amterp/paintbox/internal/inventory"
	"github.com/amterp/paintbox/internal/logging"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/ra"
	"go.uber.org/zap"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start web interface")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(0).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (default from config, 3000; will try incrementally if in use)").
		Register(cmd)

	ctx.ServeNoOpen, _ = ra.NewBool("no-open").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Don't open browser automatically").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(port int, noOpen bool, g globals) {
	app := newAppFor(g, false)
	defer app.Close()

	log := logging.NewServer(g.verbose)
	defer func() { _ = log.Sync() }()

	if port == 0 {
		port = app.Config.Port
	}

	hub := api.NewWebSocketHub(log)
	inv := inventory.New(app.ItemStore, hub, log)
	handler := api.NewHandler(inv, app.Config.DefaultColor, log)

	// The sqlite backend has no per-key files to watch.
	watchDir := ""
	if app.Config.Backend == model.BackendFile {
		watchDir = app.Paths.DataDir()
		if err := os.MkdirAll(watchDir, 0755); err != nil {
			app.Fatal(fmt.Errorf("failed to create data directory: %w", err))
		}
	}

	// Find an available port starting from the requested one
	actualPort := findAvailablePort(port)

	server := api.NewServer(handler, hub, actualPort, watchDir, log)

	url := fmt.Sprintf("http://localhost:%d", actualPort)
	PrintInfo("paintbox web server running at %s", RenderURL(url))
	PrintInfo("Serving %s", RenderMuted(app.Paths.DataDir()))
	fmt.Println("Press Ctrl+C to stop")

	if !noOpen {
		openBrowser(url)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			app.Fatal(err)
		}
	case <-sigCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown did not complete cleanly", zap.Error(err))
		}
		<-errCh
	}
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
