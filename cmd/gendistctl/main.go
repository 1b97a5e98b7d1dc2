package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"gendist/pkg/gendist"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "plan":
		return runPlan(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: gendistctl <run|runs|fitness|plan> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a JSON run request")
	storeKind := fs.String("store", "memory", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return fmt.Errorf("run: -config is required")
	}

	req, err := loadRunRequest(*configPath)
	if err != nil {
		return err
	}

	client, err := gendist.Open(ctx, gendist.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()

	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s)\n", summary.RunID, summary.Domain)
	fmt.Printf("best fitness: %g over %d generations\n", summary.BestFitness, len(summary.BestByGeneration))
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "maximum runs to list")
	storeKind := fs.String("store", "memory", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := gendist.Open(ctx, gendist.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()

	runs, err := client.Runs(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	for _, r := range runs {
		age := r.CreatedAtUTC
		if created, err := time.Parse(time.RFC3339Nano, r.CreatedAtUTC); err == nil {
			age = humanize.Time(created)
		}
		fmt.Printf("%s  %-10s pop=%d gens=%d seed=%d best=%g  %s\n",
			r.ID, r.Domain, r.PopulationSize, r.Generations, r.Seed, r.BestFitness, age)
	}
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	runID := fs.String("run", "", "run identifier")
	storeKind := fs.String("store", "memory", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return fmt.Errorf("fitness: -run is required")
	}

	client, err := gendist.Open(ctx, gendist.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()

	history, err := client.Fitness(ctx, *runID)
	if err != nil {
		return err
	}
	for gen, best := range history {
		fmt.Printf("%d\t%g\n", gen+1, best)
	}
	return nil
}

func runPlan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	runID := fs.String("run", "", "run identifier")
	storeKind := fs.String("store", "memory", "store backend: memory or sqlite")
	dbPath := fs.String("db", "", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return fmt.Errorf("plan: -run is required")
	}

	client, err := gendist.Open(ctx, gendist.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()

	plan, err := client.Plan(ctx, *runID)
	if err != nil {
		return err
	}
	fmt.Printf("plan for %s (fitness %g)\n", plan.RunID, plan.Fitness)
	for _, e := range plan.Entries {
		fmt.Printf("%d\t%d\n", e.Unit, e.District)
	}
	return nil
}
