// Command vericore is the CLI entry point for the Director: it loads
// configuration and an analysis specification, wires the configured writer
// and advice stores, and runs the Director to completion.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vericore/vericore/internal/director"
	"github.com/vericore/vericore/pkg/advice"
	"github.com/vericore/vericore/pkg/analysis"
	"github.com/vericore/vericore/pkg/config"
	"github.com/vericore/vericore/pkg/logx"
	"github.com/vericore/vericore/pkg/metrics"
	"github.com/vericore/vericore/pkg/solver"
	"github.com/vericore/vericore/pkg/writer"
)

func main() {
	fmt.Println("vericore boot")

	var configPath, specPath, httpAddr string
	flag.StringVar(&configPath, "config", "", "path to a YAML configuration file")
	flag.StringVar(&specPath, "spec", "", "path to a JSON analysis specification")
	flag.StringVar(&httpAddr, "http-addr", "", "address to serve /status and /metrics on (disabled if empty)")

	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if configPath != "" {
		// The file layer sits between defaults and flags: load it into the
		// Config the flags are bound to, then parse again so any flag given
		// on the command line still wins.
		fileCfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = fileCfg
		flag.Parse()
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if specPath == "" {
		log.Fatalf("-spec is required")
	}
	userSpec, analysisSpec, err := loadSpec(specPath)
	if err != nil {
		log.Fatalf("loading spec: %v", err)
	}

	logger := logx.NewLogger("director")
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	wr, closeWriter, err := buildWriter(cfg)
	if err != nil {
		log.Fatalf("opening writer: %v", err)
	}
	defer closeWriter()

	var adviceRead, adviceWrite advice.Store
	if cfg.ReadAdvice != "" {
		adviceRead, err = advice.OpenSQLiteStore(cfg.ReadAdvice)
		if err != nil {
			log.Fatalf("opening advice store for read: %v", err)
		}
		defer adviceRead.Close()
	}
	if cfg.WriteAdvice != "" {
		adviceWrite, err = advice.OpenSQLiteStore(cfg.WriteAdvice)
		if err != nil {
			log.Fatalf("opening advice store for write: %v", err)
		}
		defer adviceWrite.Close()
	}

	deps := director.Deps{
		Backend:         solver.NewStubBackend(),
		InvariantSource: solver.NewStubInvariantSource(),
		IVCSource:       solver.NewStubIVCSource(),
	}

	d, err := director.New(cfg, userSpec, analysisSpec, wr, deps, adviceRead, adviceWrite, logger, recorder)
	if err != nil {
		log.Fatalf("constructing director: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if httpAddr != "" {
		serveStatus(httpAddr, d, registry, logger)
	}

	os.Exit(d.Run(ctx))
}

// specFile is the minimal JSON shape main reads an analysis specification
// from. Real spec parsing is out of scope for the Director (spec.md §1);
// this is glue for the CLI binary, not a translator.
type specFile struct {
	SourceName string              `json:"source_name"`
	Vars       []analysis.VarDecl  `json:"vars"`
	Equations  []analysis.Equation `json:"equations"`
	Properties []string            `json:"properties"`
}

func loadSpec(path string) (*analysis.UserSpec, *analysis.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var sf specFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	node := analysis.Node{Vars: sf.Vars, Equations: sf.Equations}
	userSpec := &analysis.UserSpec{SourceName: sf.SourceName, Node: node}
	analysisSpec := &analysis.Spec{Properties: sf.Properties, Node: node}
	return userSpec, analysisSpec, nil
}

// buildWriter selects the output writer per the configuration's writer
// selectors and returns a cleanup func that closes any underlying file.
func buildWriter(cfg config.Config) (writer.Writer, func(), error) {
	noop := func() {}

	switch {
	case cfg.MiniJKind:
		return writer.NewMemory(), noop, nil

	case cfg.Excel:
		f, err := os.Create(cfg.Filename + ".xls")
		if err != nil {
			return nil, noop, err
		}
		return writer.NewSpreadsheet(f), func() { _ = f.Close() }, nil

	case cfg.XML:
		if cfg.XMLToStdout {
			return writer.NewXML(os.Stdout), noop, nil
		}
		f, err := os.Create(cfg.Filename + ".xml")
		if err != nil {
			return nil, noop, err
		}
		return writer.NewXML(f), func() { _ = f.Close() }, nil

	default:
		return writer.NewConsole(os.Stdout), noop, nil
	}
}

// serveStatus starts a tiny status/metrics HTTP server in the background,
// borrowing only the status-query shape from the teacher repo's webui (its
// React+websockets UI is out of scope here).
func serveStatus(addr string, d *director.Director, registry *prometheus.Registry, logger *logx.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		snap := d.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"remaining":   snap.Remaining,
			"valid":       snap.Valid,
			"invalid":     snap.Invalid,
			"runtime_sec": snap.Runtime.Seconds(),
		})
	})
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("status server stopped: %v", err)
		}
	}()
}
