// Package main is the kaimono CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kaimono/internal/catalog"
	"github.com/hyperjump/kaimono/internal/cli"
	"github.com/hyperjump/kaimono/internal/config"
	"github.com/hyperjump/kaimono/internal/models"
	"github.com/hyperjump/kaimono/internal/search"
	"github.com/hyperjump/kaimono/internal/server"
	"github.com/hyperjump/kaimono/internal/storage"
	"github.com/hyperjump/kaimono/internal/suggest"
	"github.com/hyperjump/kaimono/internal/watcher"
	"github.com/hyperjump/kaimono/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/kaimono/config.yaml"

// loadConfig loads config from path. When path is the default, it first
// looks for config.yaml in the current directory (for development); if that
// exists it is used. Returns the config and the path that was actually
// loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "suggest":
		runSuggest()
	case "import":
		runImport()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("kaimono version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`kaimono - storefront product search

Usage:
  kaimono server  [-config path] [-debug]     run the search API server
  kaimono search  [flags] <query>             search the catalog
  kaimono suggest [flags] <query>             get query suggestions
  kaimono import  [-config path] <file>       import a catalog snapshot (.json, .xlsx)
  kaimono status  [-server url]               show server status
  kaimono version                             print version
`)
}

// buildEngine constructs the search engine from config.
func buildEngine(cfg *config.Config) (*search.Engine, error) {
	scoring := cfg.Scoring
	enabled := cfg.Search.TextScoringOrDefault()
	return search.NewEngine(search.Options{
		Scoring:           &scoring,
		Synonyms:          cfg.SynonymTable(),
		EnableTextScoring: &enabled,
		Workers:           cfg.Search.Workers,
	})
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	engine, err := buildEngine(cfg)
	if err != nil {
		logger.Fatal("Failed to build engine", zap.Error(err))
	}
	defer engine.Close()

	suggester := suggest.NewGenerator(cfg.Suggest.Caps, cfg.Suggest.Suffixes)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalog.ImportDir != "" && cfg.Catalog.WatchOrDefault() {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc := watcher.New(
			cfg.Catalog.ImportDir,
			[]string{".json", ".xlsx"},
			func(path string) {
				products, loadErr := catalog.Load(path)
				if loadErr != nil {
					logger.Warn("catalog import failed", zap.String("path", path), zap.Error(loadErr))
					return
				}
				if replaceErr := store.ReplaceCatalog(context.Background(), products); replaceErr != nil {
					logger.Error("catalog replace failed", zap.String("path", path), zap.Error(replaceErr))
					return
				}
				logger.Info("catalog imported", zap.String("path", path), zap.Int("products", len(products)))
			},
			watchOpts...,
		)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start catalog watcher", zap.Error(err))
		}
		watchSvc.SyncExisting()
	}

	srv := server.NewServer(engine, suggester, store, &cfg.Server, cfg.Search.HistorySize, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQueryText joins all positional args with spaces so multi-word
// queries work the same with or without shell quoting.
func buildQueryText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// reorderFlags moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's
// flag package stops at the first non-flag argument.
func reorderFlags(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func outputFormat(name string) (cli.OutputFormat, error) {
	switch name {
	case "json":
		return cli.OutputJSON, nil
	case "text":
		return cli.OutputText, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", name)
	}
}

func runSearch() {
	args := reorderFlags(os.Args[2:])
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	limit := fs.Int("limit", 20, "number of results")
	offset := fs.Int("offset", 0, "result offset for pagination")
	sortKey := fs.String("sort", "relevance", "sort key: relevance, name, price_asc, price_desc, newest, popularity")
	category := fs.String("category", "all", "category filter (all = no constraint)")
	minPrice := fs.Float64("min-price", -1, "minimum price (unset when negative)")
	maxPrice := fs.Float64("max-price", -1, "maximum price (unset when negative)")
	inStock := fs.Bool("in-stock", false, "only in-stock products")
	featured := fs.Bool("featured", false, "only featured products")
	latest := fs.Bool("latest", false, "only latest products")
	bestSelling := fs.Bool("best-selling", false, "only best-selling products")
	output := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(args)

	format, err := outputFormat(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	req := &models.SearchRequest{
		Query:  buildQueryText(fs.Args()),
		Sort:   *sortKey,
		Limit:  *limit,
		Offset: *offset,
		Filter: models.FilterSpec{
			Category:        *category,
			InStockOnly:     *inStock,
			FeaturedOnly:    *featured,
			LatestOnly:      *latest,
			BestSellingOnly: *bestSelling,
		},
	}
	if *minPrice >= 0 {
		req.Filter.MinPrice = minPrice
	}
	if *maxPrice >= 0 {
		req.Filter.MaxPrice = maxPrice
	}

	response, err := searchViaHTTP(*serverURL, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runSuggest() {
	args := reorderFlags(os.Args[2:])
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	output := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(args)

	format, err := outputFormat(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	query := buildQueryText(fs.Args())
	response, err := suggestViaHTTP(*serverURL, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Suggest failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSuggestions(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: kaimono import [-config path] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	products, err := catalog.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ReplaceCatalog(context.Background(), products); err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d products from %s\n", len(products), path)
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(strings.TrimRight(*serverURL, "/") + "/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var status map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(status)
}

func searchViaHTTP(serverURL string, req *models.SearchRequest) (*models.SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(strings.TrimRight(serverURL, "/")+"/api/v1/search",
		"application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("server: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}
	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return &response, nil
}

func suggestViaHTTP(serverURL, query string) (*models.SuggestResponse, error) {
	u := strings.TrimRight(serverURL, "/") + "/api/v1/suggest?q=" + url.QueryEscape(query)
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}
	var response models.SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return &response, nil
}
