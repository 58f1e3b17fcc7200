package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"travel_console/internal/adapters/apiclient"
	"travel_console/internal/adapters/observability"
	"travel_console/internal/console"
	"travel_console/internal/domain"
	"travel_console/internal/shared"
)

const usage = `usage: consolectl <command> [flags]

commands:
  list    [-status all|active|inactive|draft] [-category c] [-json]
  stats   [-json]
  create  -name n -destination d [-price p] [-category c] ...
  pages
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()
	// stdout carries command output; logs go to stderr and stay quiet unless debugging
	lg := observability.NewLogger(cfg.AppEnv, cfg.LogLevel).Output(os.Stderr)
	if !strings.EqualFold(cfg.LogLevel, "debug") {
		lg = lg.Level(zerolog.ErrorLevel)
	}
	log.Logger = lg

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// failures surface to the operator; no retries
	client, err := apiclient.New(cfg.APIBaseURL, cfg.ClientRPS, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize API client")
	}
	page := console.NewPackagesPage(client)

	if err := run(ctx, os.Stdout, page, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, page *console.PackagesPage, cmd string, args []string) error {
	switch cmd {
	case "list":
		return runList(ctx, out, page, args)
	case "stats":
		return runStats(ctx, out, page, args)
	case "create":
		return runCreate(ctx, out, page, args)
	case "pages":
		return runPages(out, page)
	}
	return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
}

func runList(ctx context.Context, out io.Writer, page *console.PackagesPage, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	status := fs.String("status", "all", "status filter")
	category := fs.String("category", "all", "category filter")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := console.ParseStatusFilter(*status)
	if err != nil {
		return err
	}
	if err := load(ctx, page); err != nil {
		return err
	}
	page.SelectStatus(f)
	page.SelectCategory(*category)

	pkgs := page.Visible()
	if *asJSON {
		return writeJSON(out, pkgs)
	}
	printPackages(out, pkgs)
	return nil
}

func runStats(ctx context.Context, out io.Writer, page *console.PackagesPage, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := load(ctx, page); err != nil {
		return err
	}
	s := page.Stats()
	if *asJSON {
		return writeJSON(out, s)
	}
	fmt.Fprintf(out, "Total packages:    %d\nActive packages:   %d\nFeatured packages: %d\n", s.Total, s.Active, s.Featured)
	printCounts(out, "By status", s.ByStatus)
	printCounts(out, "By category", s.ByCategory)
	return nil
}

func runCreate(ctx context.Context, out io.Writer, page *console.PackagesPage, args []string) error {
	f := console.NewCreateForm()
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.StringVar(&f.Name, "name", "", "package name")
	fs.StringVar(&f.Destination, "destination", "", "destination")
	fs.StringVar(&f.Duration, "duration", "", "duration text, e.g. \"7 days / 6 nights\"")
	fs.Float64Var(&f.Price, "price", 0, "price")
	fs.Float64Var(&f.OriginalPrice, "original-price", 0, "price before discount")
	fs.StringVar(&f.Description, "description", "", "description")
	fs.StringVar(&f.Highlights, "highlights", "", "comma separated highlights")
	fs.StringVar(&f.Includes, "includes", "", "comma separated inclusions")
	fs.StringVar(&f.Category, "category", f.Category, "category")
	fs.BoolVar(&f.Featured, "featured", false, "mark as featured")
	fs.StringVar(&f.Route, "route", "", "route, e.g. \"Paris - Rome\"")
	fs.IntVar(&f.Nights, "nights", 0, "nights")
	fs.IntVar(&f.Days, "days", 0, "days")
	fs.StringVar(&f.TripType, "trip-type", f.TripType, "trip type")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page.OpenCreate()
	p, err := page.SubmitCreate(ctx, f)
	if err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	fmt.Fprintf(out, "created package %d (%s)\n", p.ID, p.Name)
	if page.State() == console.StateError {
		fmt.Fprintf(out, "list refresh failed: %s\n", page.Err())
	}
	return nil
}

func runPages(out io.Writer, page *console.PackagesPage) error {
	shell := console.NewShell(page)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tPAGE\tSTATE")
	for _, item := range shell.Nav() {
		title, state := "-", "-"
		if p, ok := shell.Resolve(item.Path); ok {
			title, state = p.Title(), string(p.State())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.Path, item.Name, title, state)
	}
	return tw.Flush()
}

// load drives the page to ready, reporting the error state the way the
// page shows it.
func load(ctx context.Context, page *console.PackagesPage) error {
	if err := page.Load(ctx); err != nil {
		return fmt.Errorf("error loading packages: %s (run the command again to retry)", page.Err())
	}
	return nil
}

func printPackages(out io.Writer, pkgs []domain.Package) {
	if len(pkgs) == 0 {
		fmt.Fprintln(out, "no packages")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESTINATION\tCATEGORY\tSTATUS\tFEATURED\tPRICE")
	for _, p := range pkgs {
		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("%.2f", *p.Price)
		}
		featured := ""
		if p.Featured {
			featured = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Destination, p.Category, p.Status, featured, price)
	}
	_ = tw.Flush()
}

func printCounts(out io.Writer, title string, m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(out, "%s:\n", title)
	for _, k := range keys {
		fmt.Fprintf(out, "  %-12s %d\n", k, m[k])
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
