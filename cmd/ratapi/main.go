package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rat-tools/ratapi/internal/config"
	"github.com/rat-tools/ratapi/internal/logger"
	"github.com/rat-tools/ratapi/internal/reqfile"
	"github.com/rat-tools/ratapi/pkg/api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ratapi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("ratapi starting", "config", cfg)

	path := cfg.RequestFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	req, err := reqfile.Load(path)
	if err != nil {
		return fmt.Errorf("load request: %w", err)
	}
	logger.DebugObj("request loaded", "request", req)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.New(cfg.Timeout)

	uri := req.URI
	if uri == "" {
		parts := req.Fragments
		if cfg.APIBaseURL != "" {
			parts = append([]string{cfg.APIBaseURL}, parts...)
		}
		uri = api.URLJoin(parts...)
	}

	var opts []api.CallOption
	if len(req.Statuses) > 0 {
		opts = append(opts, api.WithStatuses(req.Statuses...))
	}
	for k, v := range req.Headers {
		opts = append(opts, api.WithHeader(k, v))
	}

	result, err := client.Call(ctx, req.Method, uri, req.Data, opts...)
	if err != nil {
		logger.ErrorObj("api call failed", "error", err)
		return fmt.Errorf("call %s %s: %w", req.Method, uri, err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
