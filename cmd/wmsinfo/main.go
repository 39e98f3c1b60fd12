// Command wmsinfo fetches the capabilities of configured WMS endpoints and
// prints each service's metadata and layer tree.
//
// Usage:
//
//	wmsinfo -config wmsinfo.yaml
//
// The exit code is non-zero when any configured service fails to answer
// with a parseable capabilities document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/productinfo/Mapsui/internal/config"
	"github.com/productinfo/Mapsui/pkg/wms"
)

func main() {
	configPath := flag.String("config", "wmsinfo.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wmsinfo: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	failed := 0
	for _, svc := range cfg.Services {
		if err := inspect(logger, svc); err != nil {
			logger.Error("service inspection failed", "service", svc.Name, "error", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func inspect(logger *slog.Logger, svc config.ServiceConfig) error {
	log := logger.With("service", svc.Name, "fetch_id", uuid.NewString())

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(svc.Timeout))
	defer cancel()

	client := wms.NewClientWithConfig(wms.ClientConfig{
		Version: svc.Version,
		Logger:  log,
	})

	log.Debug("fetching capabilities", "url", svc.URL, "version_hint", svc.Version)
	caps, err := client.GetCapabilities(ctx, svc.URL)
	if err != nil {
		return err
	}
	log.Info("capabilities loaded",
		"version", caps.Version,
		"layers", countLayers(caps.Layer))

	printCapabilities(caps)
	return nil
}

func countLayers(layer *wms.Layer) int {
	if layer == nil {
		return 0
	}
	n := 1
	for _, child := range layer.Children {
		n += countLayers(child)
	}
	return n
}

func printCapabilities(caps *wms.Capabilities) {
	title := caps.Service.Title
	if title == "" {
		title = "(untitled service)"
	}
	fmt.Printf("%s (WMS %s)\n", title, caps.Version)
	if caps.Service.Abstract != "" {
		fmt.Printf("  %s\n", caps.Service.Abstract)
	}
	if len(caps.Service.Keywords) > 0 {
		fmt.Printf("  keywords: %s\n", strings.Join(caps.Service.Keywords, ", "))
	}
	fmt.Printf("  GetMap formats: %s\n", strings.Join(caps.GetMapFormats, ", "))
	if len(caps.GetFeatureInfoFormats) > 0 {
		fmt.Printf("  GetFeatureInfo formats: %s\n", strings.Join(caps.GetFeatureInfoFormats, ", "))
	}
	printLayer(caps.Layer, 1)
}

func printLayer(layer *wms.Layer, depth int) {
	name := layer.Name
	if name == "" {
		name = "(group)"
	}
	var marker string
	if layer.Queryable {
		marker = " [queryable]"
	}
	fmt.Printf("%s- %s%s\n", strings.Repeat("  ", depth), name, marker)
	for _, child := range layer.Children {
		printLayer(child, depth+1)
	}
}
