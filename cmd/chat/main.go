// Command chat is a terminal front-end for the query API. Each subcommand
// maps to one tool and prints its markdown to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/teslamate-tools/teslachat/internal/chat"
	"github.com/teslamate-tools/teslachat/internal/config"
)

const usage = `Usage: chat <command> [args]

Commands:
  date                       Today's date, weekday and ISO week
  car                        Vehicle info
  battery                    Latest battery status
  battery-health             Range degradation estimate
  distance                   All-time distance totals
  charging [days]            Charging stats (default 30 days)
  drives [limit]             Most recent drives (default 10)
  range <start> [end]        Drives in a date range ("igår", "förra månaden", 2024-06-01, ...)
  journal [start] [end]      Körjournal for a date range (default last 7 days)
  efficiency [days]          Consumption averages (default 30 days)
  temperature [hours]        Cabin/outside temperatures (default 24 hours)
  tires                      Latest tire pressure
  state                      Current car state
  stats [days]               Drive statistics (default 30 days)
  health                     API and database status
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	tools := chat.NewTools(chat.NewClient(cfg.APIBaseURL, cfg.ClientTimeout))
	ctx := context.Background()
	args := os.Args[2:]

	var out string
	switch os.Args[1] {
	case "date":
		out = tools.CurrentDate()
	case "car":
		out = tools.CarInfo(ctx)
	case "battery":
		out = tools.BatteryStatus(ctx)
	case "battery-health":
		out = tools.BatteryHealth(ctx)
	case "distance":
		out = tools.TotalDistance(ctx)
	case "charging":
		out = tools.ChargingStats(ctx, intArg(args, 0, 30))
	case "drives":
		out = tools.RecentDrives(ctx, intArg(args, 0, 10))
	case "range":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "range needs a start date")
			os.Exit(2)
		}
		out = tools.DrivesByDate(ctx, args[0], strArg(args, 1))
	case "journal":
		out = tools.DrivingJournal(ctx, strArg(args, 0), strArg(args, 1))
	case "efficiency":
		out = tools.Efficiency(ctx, intArg(args, 0, 30))
	case "temperature":
		out = tools.Temperature(ctx, intArg(args, 0, 24))
	case "tires":
		out = tools.TirePressure(ctx)
	case "state":
		out = tools.CarState(ctx)
	case "stats":
		out = tools.DriveStats(ctx, intArg(args, 0, 30))
	case "health":
		out = tools.HealthStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	fmt.Println(out)
}

func strArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func intArg(args []string, i, fallback int) int {
	if i >= len(args) {
		return fallback
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid number: %s\n", args[i])
		os.Exit(2)
	}
	return n
}
