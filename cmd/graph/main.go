package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"main/internal/graph"
	"main/internal/layout"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/schema"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON dataset")
	output := flag.String("output", "both", "Output: metrics|layout|both")
	pretty := flag.Bool("pretty", true, "Indent JSON output")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address, empty disables profiling")
	flag.Parse()

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "assetgraph",
			ServerAddress:   *pyroscopeAddr,
			Tags: map[string]string{
				"env": "local",
			},
			Logger: emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	metrics := obs.NewMetrics()
	loaded, err := loadDataset(*configPath, metrics)
	if err != nil {
		log.Fatalf("dataset load failed: %v", err)
	}

	engine := loaded.Engine
	engine.BuildRelationships()
	loaded.ApplyRelationships()

	snapshot := engine.CalculateMetrics()
	logs.Infof("graph built, assets: %d, edges: %d, events: %d",
		len(engine.Assets()), snapshot.TotalRelationships, snapshot.RegulatoryEventCount)

	var payload any
	switch *output {
	case "metrics":
		payload = snapshot
	case "layout":
		payload = engine.GetLayoutData()
	case "both":
		payload = combined{Metrics: snapshot, Layout: engine.GetLayoutData()}
	default:
		log.Fatalf("unsupported output: %s", *output)
	}

	if err := write(payload, *pretty); err != nil {
		log.Fatalf("encode output failed: %v", err)
	}

	counters := metrics.Snapshot()
	logs.Infof("rebuilds: %d, inserted: %d, dedup skips: %d, skipped events: %d, rebuild avg: %s",
		counters.Rebuilds, counters.EdgesInserted, counters.DedupSkips, counters.EventsSkipped, counters.RebuildLatency.Avg)
}

type combined struct {
	Metrics graph.Snapshot `json:"metrics"`
	Layout  layout.Data    `json:"layout"`
}

func write(payload any, pretty bool) error {
	encoder := json.NewEncoder(os.Stdout)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(payload)
}

func loadDataset(path string, metrics *obs.Metrics) (ops.Loaded, error) {
	if path == "" {
		return ops.Build(defaultDataset(), metrics)
	}
	return ops.Load(path, metrics)
}

// defaultDataset is a small built-in sample so the tool runs without a file.
func defaultDataset() ops.FileConfig {
	return ops.FileConfig{
		Assets: []schema.Asset{
			{ID: "AAPL", Symbol: "AAPL", Name: "Apple Inc.", Class: schema.AssetClassEquity, Sector: "Technology", Price: 227.3, PERatio: 34.6, Currency: "USD"},
			{ID: "MSFT", Symbol: "MSFT", Name: "Microsoft Corp.", Class: schema.AssetClassEquity, Sector: "Technology", Price: 415.1, PERatio: 36.2, Currency: "USD"},
			{ID: "AAPL-27", Symbol: "AAPL27", Name: "Apple 2027 Note", Class: schema.AssetClassFixedIncome, Sector: "Technology", Price: 98.4, CouponRate: 3.25, IssuerID: "AAPL", Currency: "USD"},
			{ID: "XAU", Symbol: "XAU", Name: "Gold Spot", Class: schema.AssetClassCommodity, Sector: schema.SectorUnknown, Price: 2387.5, Currency: "USD"},
			{ID: "EURUSD", Symbol: "EURUSD", Name: "Euro / US Dollar", Class: schema.AssetClassCurrency, Sector: schema.SectorUnknown, Price: 1.0, ExchangeRate: 1.0814},
		},
		Events: []schema.RegulatoryEvent{
			{
				ID:            "EV-1",
				AssetID:       "AAPL",
				Type:          schema.EventInvestigation,
				Date:          time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
				Description:   "antitrust inquiry into app store terms",
				ImpactScore:   -0.6,
				RelatedAssets: []string{"MSFT", "AAPL-27"},
			},
		},
	}
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
