package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dltn/repox"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	viper.SetEnvPrefix("repox")
	viper.AutomaticEnv()
	viper.SetDefault("url", "http://localhost:8080")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("inventory", defaultInventoryPath())

	viper.SetConfigName("repox")
	viper.AddConfigPath("$HOME/.config/repox")
	viper.AddConfigPath(".")
	// A config file is optional; env vars and defaults are enough.
	_ = viper.ReadInConfig()

	level, err := log.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	log.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := repox.New(
		viper.GetString("url"),
		viper.GetString("username"),
		viper.GetString("password"),
		repox.WithLogger(log.StandardLogger()),
	)

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "aggregators":
		cmdAggregators(ctx, client, args)
	case "providers":
		cmdProviders(ctx, client, args)
	case "datasets":
		cmdDatasets(ctx, client, args)
	case "dataset":
		cmdDataset(ctx, client, args)
	case "harvest":
		cmdHarvest(ctx, client, args)
	case "stats":
		cmdStats(ctx, client)
	case "sync":
		cmdSync(ctx, client, args)
	case "inventory":
		cmdInventory(ctx, args)
	case "help":
		usage()
	default:
		log.Fatalf("unknown command: %s", cmd)
	}
}

func defaultInventoryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "repox", "inventory.db")
}

func usage() {
	fmt.Println(`repox - manage a REPOX aggregation service instance

Usage: repox <command> [options]

Commands:
  aggregators  List aggregators
  providers    List providers of an aggregator
  datasets     List datasets of a provider
  dataset      Show details of a dataset
  harvest      Start, inspect, schedule or cancel harvests
  stats        Show instance statistics
  sync         Snapshot the remote tree into the local inventory
  inventory    Inspect the local inventory snapshot

Environment:
  REPOX_URL        Base URL of the instance (default: http://localhost:8080)
  REPOX_USERNAME   Basic auth username
  REPOX_PASSWORD   Basic auth password
  REPOX_LOG_LEVEL  Log level (default: info)
  REPOX_INVENTORY  Inventory database (default: ~/.cache/repox/inventory.db)

Examples:
  repox aggregators -verbose
  repox providers -aggregator dltn
  repox datasets -provider UTKr0
  repox dataset -count -date nr
  repox harvest start -sample nr
  repox harvest schedules nr
  repox sync -counts
  repox inventory -provider UTKr0`)
}

func cmdAggregators(ctx context.Context, client *repox.Client, args []string) {
	fs := flag.NewFlagSet("aggregators", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Show full metadata")
	fs.Parse(args)

	if !*verbose {
		ids, err := client.AggregatorIDs(ctx)
		if err != nil {
			log.Fatalf("list aggregators: %v", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	aggregators, err := client.Aggregators(ctx)
	if err != nil {
		log.Fatalf("list aggregators: %v", err)
	}
	for _, a := range aggregators {
		fmt.Printf("[%s] %s (%s) %s\n", a.ID, a.Name, a.NameCode, a.Homepage)
	}
}

func cmdProviders(ctx context.Context, client *repox.Client, args []string) {
	fs := flag.NewFlagSet("providers", flag.ExitOnError)
	aggregator := fs.String("aggregator", "", "Aggregator id (required)")
	verbose := fs.Bool("verbose", false, "Show full metadata")
	fs.Parse(args)

	if *aggregator == "" {
		log.Fatal("usage: repox providers -aggregator <id> [-verbose]")
	}

	if !*verbose {
		ids, err := client.ProviderIDs(ctx, *aggregator)
		if err != nil {
			log.Fatalf("list providers: %v", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	providers, err := client.Providers(ctx, *aggregator)
	if err != nil {
		log.Fatalf("list providers: %v", err)
	}
	for _, p := range providers {
		fmt.Printf("[%s] %s  type=%s country=%s email=%s\n",
			p.ID, p.Name, p.ProviderType, p.CountryCode, p.Email)
	}
}

func cmdDatasets(ctx context.Context, client *repox.Client, args []string) {
	fs := flag.NewFlagSet("datasets", flag.ExitOnError)
	provider := fs.String("provider", "", "Provider id (required)")
	verbose := fs.Bool("verbose", false, "Show full metadata")
	fs.Parse(args)

	if *provider == "" {
		log.Fatal("usage: repox datasets -provider <id> [-verbose]")
	}

	if !*verbose {
		ids, err := client.DatasetIDs(ctx, *provider)
		if err != nil {
			log.Fatalf("list datasets: %v", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	datasets, err := client.Datasets(ctx, *provider)
	if err != nil {
		log.Fatalf("list datasets: %v", err)
	}
	for _, d := range datasets {
		fmt.Printf("[%s] %s  type=%s format=%s\n",
			d.DataSource.ID, d.Name, d.DataSource.DataSetType, d.DataSource.MetadataFormat)
	}
}

func cmdDataset(ctx context.Context, client *repox.Client, args []string) {
	fs := flag.NewFlagSet("dataset", flag.ExitOnError)
	count := fs.Bool("count", false, "Also show the record count")
	date := fs.Bool("date", false, "Also show the last ingest date")
	fs.Parse(args)

	if fs.NArg() == 0 {
		log.Fatal("usage: repox dataset [-count] [-date] <dataset-id>")
	}
	id := fs.Arg(0)

	d, err := client.Dataset(ctx, id)
	if err != nil {
		log.Fatalf("get dataset: %v", err)
	}

	fmt.Printf("ID:       %s\n", d.DataSource.ID)
	fmt.Printf("Name:     %s\n", d.Name)
	fmt.Printf("NameCode: %s\n", d.NameCode)
	fmt.Printf("Type:     %s\n", d.DataSource.DataSetType)
	fmt.Printf("Format:   %s\n", d.DataSource.MetadataFormat)
	fmt.Printf("Schema:   %s\n", d.DataSource.Schema)
	if d.DataSource.OAISourceURL != "" {
		fmt.Printf("OAI URL:  %s\n", d.DataSource.OAISourceURL)
		fmt.Printf("OAI Set:  %s\n", d.DataSource.OAISet)
	}
	if d.DataSource.Description != "" {
		fmt.Printf("\n%s\n", d.DataSource.Description)
	}

	if *count {
		n, err := client.RecordCount(ctx, id)
		if err != nil {
			log.Fatalf("record count: %v", err)
		}
		fmt.Printf("Records:  %d\n", n)
	}
	if *date {
		ingest, err := client.LastIngestDate(ctx, id)
		if err != nil {
			log.Fatalf("last ingest date: %v", err)
		}
		fmt.Printf("Ingested: %s\n", ingest)
	}
}

func cmdHarvest(ctx context.Context, client *repox.Client, args []string) {
	if len(args) < 1 {
		log.Fatal("usage: repox harvest <start|status|log|schedules|cancel> <dataset-id>")
	}
	sub := args[0]
	args = args[1:]

	fs := flag.NewFlagSet("harvest "+sub, flag.ExitOnError)
	sample := fs.Bool("sample", false, "Harvest only a sample of records (start)")
	fs.Parse(args)

	if fs.NArg() == 0 {
		log.Fatal("usage: repox harvest <start|status|log|schedules|cancel> <dataset-id>")
	}
	id := fs.Arg(0)

	switch sub {
	case "start":
		if err := client.StartHarvest(ctx, id, *sample); err != nil {
			log.Fatalf("start harvest: %v", err)
		}
		fmt.Printf("Harvest of %s started.\n", id)
	case "status":
		status, err := client.HarvestStatus(ctx, id)
		if err != nil {
			log.Fatalf("harvest status: %v", err)
		}
		fmt.Println(status)
	case "log":
		text, err := client.LastHarvestLog(ctx, id)
		if err != nil {
			log.Fatalf("harvest log: %v", err)
		}
		fmt.Println(text)
	case "schedules":
		tasks, err := client.ScheduledHarvests(ctx, id)
		if err != nil {
			log.Fatalf("scheduled harvests: %v", err)
		}
		if len(tasks) == 0 {
			fmt.Println("No scheduled harvests.")
			return
		}
		for _, t := range tasks {
			fmt.Printf("[%s] %s %s\n", t.ID, t.Frequency, t.Time)
		}
	case "cancel":
		if err := client.CancelHarvest(ctx, id); err != nil {
			log.Fatalf("cancel harvest: %v", err)
		}
		fmt.Printf("Harvest of %s cancelled.\n", id)
	default:
		log.Fatalf("unknown harvest command: %s", sub)
	}
}

func cmdStats(ctx context.Context, client *repox.Client) {
	stats, err := client.Statistics(ctx)
	if err != nil {
		log.Fatalf("statistics: %v", err)
	}

	fmt.Printf("Generated:     %s\n", stats.GenerationDate)
	fmt.Printf("Aggregators:   %d\n", stats.Aggregators)
	fmt.Printf("Providers:     %d\n", stats.DataProviders)
	fmt.Printf("OAI sources:   %d\n", stats.DataSourcesOAI)
	fmt.Printf("Dir sources:   %d\n", stats.DataSourcesDirectory)
	fmt.Printf("Z39.50:        %d\n", stats.DataSourcesZ3950)
	fmt.Printf("Total records: %d\n", stats.RecordsTotal)
	for _, f := range stats.MetadataFormats {
		fmt.Printf("  %-10s %d sources, %d records\n", f.MetadataFormat, f.DataSources, f.Records)
	}
}

func cmdSync(ctx context.Context, client *repox.Client, args []string) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	counts := fs.Bool("counts", false, "Also fetch record counts and ingest dates")
	fs.Parse(args)

	inv, err := repox.OpenInventory(viper.GetString("inventory"))
	if err != nil {
		log.Fatalf("open inventory: %v", err)
	}
	defer inv.Close()

	opts := &repox.InventorySyncOptions{
		WithCounts: *counts,
		Progress: func(aggregators, providers, datasets int) {
			fmt.Printf("\rSyncing: %d aggregators, %d providers, %d datasets", aggregators, providers, datasets)
		},
	}
	if err := inv.Sync(ctx, client, opts); err != nil {
		log.Fatalf("sync: %v", err)
	}
	fmt.Println("\nSync complete.")
}

func cmdInventory(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("inventory", flag.ExitOnError)
	provider := fs.String("provider", "", "List datasets of this provider")
	fs.Parse(args)

	inv, err := repox.OpenInventory(viper.GetString("inventory"))
	if err != nil {
		log.Fatalf("open inventory: %v", err)
	}
	defer inv.Close()

	if *provider != "" {
		datasets, err := inv.SnapshotDatasets(ctx, *provider)
		if err != nil {
			log.Fatalf("list snapshot datasets: %v", err)
		}
		for _, d := range datasets {
			fmt.Printf("[%s] %s  type=%s records=%d\n", d.ID, d.Name, d.DatasetType, d.Records)
		}
		return
	}

	stats, err := inv.Stats(ctx)
	if err != nil {
		log.Fatalf("inventory stats: %v", err)
	}
	fmt.Printf("Inventory:     %s\n", inv.Path())
	fmt.Printf("Aggregators:   %d\n", stats.Aggregators)
	fmt.Printf("Providers:     %d\n", stats.Providers)
	fmt.Printf("Datasets:      %d\n", stats.Datasets)
	fmt.Printf("Total records: %d\n", stats.RecordsTotal)
	if !stats.LastSync.IsZero() {
		fmt.Printf("Last sync:     %s\n", stats.LastSync.Format("2006-01-02 15:04:05"))
	}
}
