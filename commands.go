package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"screenforge/internal/codegen"
	"screenforge/internal/config"
	"screenforge/internal/export"
	"screenforge/internal/layout"
	"screenforge/internal/scene"
	"screenforge/internal/server"
	"screenforge/internal/watch"
)

func tuiCommand(args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sc, err := loadScene(fs.Arg(0))
	if err != nil {
		return err
	}

	// Anything written to stderr would corrupt the alt screen.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "screenforge")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(cfg, sc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

func genCommand(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	output := fs.String("o", "", "write code to `file` instead of stdout")
	pngPath := fs.String("png", "", "also render a PNG mock-up to `file`")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: screenforge gen [-o file] [-png file] <manifest>")
	}

	sc, err := loadScene(fs.Arg(0))
	if err != nil {
		return err
	}
	elements := sc.Elements()
	code := codegen.Generate(elements)

	if *output == "" {
		fmt.Println(code)
	} else if err := export.WriteCode(*output, code); err != nil {
		return err
	}
	if *pngPath != "" {
		if err := export.RenderPNG(elements, *pngPath); err != nil {
			return fmt.Errorf("render png: %w", err)
		}
	}
	return nil
}

func watchCommand(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	output := fs.String("o", "", "output `file` (default: export path from config)")
	pngPath := fs.String("png", "", "also render a PNG mock-up to `file`")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: screenforge watch [-o file] [-png file] <manifest>")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := *output
	if out == "" {
		out = cfg.ExportPath()
	}

	w, err := watch.New(fs.Arg(0), out)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.SetPreview(*pngPath)
	if err := w.Regenerate(); err != nil {
		log.Printf("[Watch] Initial build failed: %v", err)
	}
	w.Start()
	defer w.Stop()

	log.Printf("[Watch] Watching %s, writing %s", fs.Arg(0), out)
	waitForSignal()
	return nil
}

func serveCommand(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen `address` (default: server_addr from config, or :$PORT)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *addr == "" {
		*addr = cfg.ServerAddr
	}

	srv := server.New()
	go func() {
		waitForSignal()
		log.Printf("[Server] Shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Printf("[Server] Shutdown error: %v", err)
		}
	}()
	return srv.Listen(*addr)
}

// loadScene builds the scene described by the manifest at path. An empty
// path yields an empty scene.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.New(), nil
	}
	m, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

func waitForSignal() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
