package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/goliatone/go-funnel-checklist/components/checklist"
	"github.com/goliatone/go-funnel-checklist/components/checklist/commands"
	"github.com/goliatone/go-funnel-checklist/components/checklist/gorouter"
	"github.com/goliatone/go-funnel-checklist/components/checklist/httpapi"
	"github.com/goliatone/go-funnel-checklist/components/checklist/queries"
	"github.com/goliatone/go-funnel-checklist/pkg/config"
	"github.com/goliatone/go-funnel-checklist/pkg/telemetry"
)

type cli struct {
	Serve   serveCmd   `cmd:"" default:"1" help:"Serve the funnel checklist page."`
	Catalog catalogCmd `cmd:"" help:"Inspect and validate catalog manifests."`
}

type serveCmd struct {
	EnvFile string `name:"env-file" default:".env" help:"Optional .env file loaded before the environment."`
	Addr    string `help:"Listen address (overrides CHECKLIST_ADDR)."`
	Engine  string `help:"HTTP engine: fiber or http (overrides CHECKLIST_ENGINE)."`
	Catalog string `type:"path" help:"Catalog manifest replacing the built-in catalogs (overrides CHECKLIST_CATALOG_PATH)."`
	Open    bool   `help:"Open the checklist in the default browser once the server is up."`
}

type catalogCmd struct {
	Export   catalogExportCmd   `cmd:"" help:"Write the active catalogs as a YAML manifest."`
	Validate catalogValidateCmd `cmd:"" help:"Validate a catalog manifest."`
}

type catalogExportCmd struct {
	Catalog string `type:"path" help:"Manifest to load instead of the built-in catalogs."`
	Out     string `short:"o" type:"path" help:"Output file (defaults to stdout)."`
}

type catalogValidateCmd struct {
	Path string `arg:"" type:"existingfile" help:"Manifest file to validate."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Name("funnelctl"),
		kong.Description("Funnel planning checklist server and catalog tooling."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *serveCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(cmd.EnvFile)
	if err != nil {
		return err
	}
	cmd.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := telemetry.NewLogger(telemetry.LoggerOptions{
		FilePath:   cfg.LogFile,
		Production: cfg.Production(),
	})
	defer func() { _ = logger.Sync() }()
	sink := telemetry.NewZapTelemetry(logger, "checklist")

	app, err := newApp(ctx, cfg, sink)
	if err != nil {
		return err
	}
	logger.Info("catalog ready", zap.String("catalog", checklist.CatalogCounts(app.service.Catalog())))

	url := pageURL(cfg.Addr, app.pagePath)
	if cfg.OpenBrowser {
		go func() {
			time.Sleep(300 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				logger.Warn("open browser", zap.Error(err))
			}
		}()
	}

	logger.Info("checklist ready",
		zap.String("url", url),
		zap.String("engine", cfg.Engine),
		zap.Duration("session_ttl", cfg.SessionTTL),
	)
	switch cfg.Engine {
	case config.EngineHTTP:
		return serveHTTP(cfg, app)
	default:
		return serveFiber(cfg, app)
	}
}

func (cmd *serveCmd) apply(cfg *config.Config) {
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}
	if cmd.Engine != "" {
		cfg.Engine = strings.ToLower(cmd.Engine)
	}
	if cmd.Catalog != "" {
		cfg.CatalogPath = cmd.Catalog
	}
	if cmd.Open {
		cfg.OpenBrowser = true
	}
}

type application struct {
	service    *checklist.Service
	controller *checklist.Controller
	executor   httpapi.Executor
	summary    *queries.SummaryQuery
	validator  checklist.GoalPayloadValidator
	prefix     string
	pagePath   string
}

func newApp(ctx context.Context, cfg config.Config, sink *telemetry.ZapTelemetry) (*application, error) {
	registry := checklist.NewEmptyRegistry()
	seed := commands.NewSeedCatalogCommand(registry, sink)
	if err := seed.Execute(ctx, commands.SeedCatalogInput{ManifestPath: cfg.CatalogPath}); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	var chartOpts []checklist.GoalsChartOption
	if cfg.ChartAssetsHost != "" {
		chartOpts = append(chartOpts, checklist.WithChartAssetsHost(cfg.ChartAssetsHost))
	}
	service := checklist.NewService(checklist.Options{
		Sessions:  checklist.NewCacheSessionStore(cfg.SessionTTL, cfg.SessionCleanup),
		Catalog:   registry,
		Charts:    checklist.NewGoalsChart(chartOpts...),
		Telemetry: sink,
	})
	renderer, err := checklist.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("template renderer: %w", err)
	}

	prefix := strings.TrimSuffix(cfg.BasePath, "/")
	pagePath := prefix + httpapi.DefaultPagePath
	return &application{
		service: service,
		controller: checklist.NewController(checklist.ControllerOptions{
			Service:  service,
			Renderer: renderer,
			BasePath: pagePath,
		}),
		executor: httpapi.CommandExecutor{
			ToggleCommand:     commands.NewToggleEntryCommand(service, sink),
			SaveNoteCommand:   commands.NewSaveNoteCommand(service, sink),
			SetGoalsCommand:   commands.NewSetGoalsCommand(service, sink),
			EndSessionCommand: commands.NewEndSessionCommand(service, sink),
		},
		summary:   queries.NewSummaryQuery(service),
		validator: checklist.NewJSONSchemaGoalValidator(),
		prefix:    prefix,
		pagePath:  pagePath,
	}, nil
}

func serveFiber(cfg config.Config, app *application) error {
	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: app.controller,
		Sessions:   app.service,
		API:        app.executor,
		Summary:    app.summary,
		Validator:  app.validator,
		BasePath:   app.prefix,
	}); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}
	return server.Serve(cfg.Addr)
}

func serveHTTP(cfg config.Config, app *application) error {
	handlers := &httpapi.Handlers{
		Sessions:   app.service,
		Controller: app.controller,
		API:        app.executor,
		Summary:    app.summary,
		Validator:  app.validator,
		PagePath:   app.pagePath,
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func pageURL(addr, pagePath string) string {
	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	return "http://" + host + pagePath
}

func (cmd *catalogExportCmd) Run(_ context.Context) error {
	registry := checklist.NewEmptyRegistry()
	if err := checklist.SeedCatalog(registry, cmd.Catalog); err != nil {
		return err
	}
	var out io.Writer = os.Stdout
	if cmd.Out != "" {
		file, err := os.Create(cmd.Out)
		if err != nil {
			return fmt.Errorf("funnelctl: create %s: %w", cmd.Out, err)
		}
		defer file.Close()
		out = file
	}
	return checklist.EncodeManifest(out, checklist.ManifestFromRegistry(registry))
}

func (cmd *catalogValidateCmd) Run(_ context.Context) error {
	doc, err := checklist.ReadManifest(cmd.Path)
	if err != nil {
		return err
	}
	registry := checklist.NewEmptyRegistry()
	if err := registry.LoadManifestDocument(doc); err != nil {
		return err
	}
	fmt.Printf("%s: ok (%s)\n", cmd.Path, checklist.CatalogCounts(registry))
	return nil
}
