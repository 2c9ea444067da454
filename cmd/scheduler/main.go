package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"voyage/internal/gateway/http/voyageapi"
	"voyage/internal/pkg/config"
	"voyage/internal/pkg/dotenv"
	"voyage/internal/schedule/daterange"
	"voyage/internal/schedule/form"
	"voyage/internal/schedule/querycache"
	"voyage/internal/schedule/submit"
	"voyage/pkg/logger"
	"voyage/pkg/logger/zap_adapter"
)

const dayLayout = "2006-01-02"

type options struct {
	list bool

	portOfLoading   string
	portOfDischarge string
	vesselID        string
	unitTypeIDs     string
	departureDay    string
	departureTime   string
	arrivalDay      string
	arrivalTime     string
}

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	opts := parseFlags()

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadScheduler()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), appLogger, cfg, opts)
	if err != nil {
		mainLog.Error("scheduler failed", logger.NewField("error", err))
		return
	}
}

func parseFlags() *options {
	opts := &options{}

	flag.BoolVar(&opts.list, "list", false, "print scheduled voyages and exit")
	flag.StringVar(&opts.portOfLoading, "loading", "", "port of loading (Copenhagen or Oslo)")
	flag.StringVar(&opts.portOfDischarge, "discharge", "", "port of discharge (Copenhagen or Oslo)")
	flag.StringVar(&opts.vesselID, "vessel", "", "vessel id")
	flag.StringVar(&opts.unitTypeIDs, "unit-types", "", "comma-separated unit type ids")
	flag.StringVar(&opts.departureDay, "departure-day", "", "departure day, YYYY-MM-DD")
	flag.StringVar(&opts.departureTime, "departure-time", "", "departure time of day, HH:MM")
	flag.StringVar(&opts.arrivalDay, "arrival-day", "", "arrival day, YYYY-MM-DD")
	flag.StringVar(&opts.arrivalTime, "arrival-time", "", "arrival time of day, HH:MM")
	flag.Parse()

	return opts
}

func run(ctx context.Context, log logger.Logger, cfg *config.Scheduler, opts *options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	gateway := voyageapi.New(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout})

	if opts.list {
		return listVoyages(ctx, gateway)
	}

	return createVoyage(ctx, log, gateway, opts)
}

func listVoyages(ctx context.Context, gateway *voyageapi.Gateway) error {
	voyages, err := gateway.Voyages(ctx)
	if err != nil {
		return fmt.Errorf("get voyages: %w", err)
	}

	for _, voyage := range voyages {
		unitTypeNames := make([]string, len(voyage.UnitTypes))
		for i, unitType := range voyage.UnitTypes {
			unitTypeNames[i] = unitType.Name
		}

		fmt.Printf("%s  %s -> %s  %s  %s - %s  [%s]\n",
			voyage.ID,
			voyage.PortOfLoading,
			voyage.PortOfDischarge,
			voyage.Vessel.Name,
			voyage.ScheduledDeparture.Format(time.RFC3339),
			voyage.ScheduledArrival.Format(time.RFC3339),
			strings.Join(unitTypeNames, ", "),
		)
	}

	return nil
}

func createVoyage(ctx context.Context, log logger.Logger, gateway *voyageapi.Gateway, opts *options) error {
	runLog := log.With()

	formModel, err := form.NewModel()
	if err != nil {
		return fmt.Errorf("form model: %w", err)
	}

	selector := daterange.NewSelector(time.Now(), formModel.SetDateRange)

	vessels, unitTypes, err := gateway.ReferenceData(ctx)
	if err != nil {
		return fmt.Errorf("reference data: %w", err)
	}
	formModel.SetReferenceData(vessels, unitTypes)

	if err := applyDates(selector, opts); err != nil {
		return err
	}

	formModel.SelectPortOfLoading(opts.portOfLoading)
	formModel.SelectPortOfDischarge(opts.portOfDischarge)

	if err := formModel.SelectVessel(opts.vesselID); err != nil {
		return fmt.Errorf("select vessel: %w", err)
	}
	if err := formModel.SelectUnitTypes(splitIDs(opts.unitTypeIDs)); err != nil {
		return fmt.Errorf("select unit types: %w", err)
	}

	controller := submit.NewController(
		formModel,
		gateway,
		querycache.New(),
		logNotifier{log: runLog},
		func() { runLog.Info("voyage form closed") },
	)
	defer controller.Close()

	err = controller.Submit(ctx)
	if err != nil {
		if errors.Is(err, submit.ErrDraftInvalid) {
			for field, message := range formModel.FieldErrors() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
			}
			return err
		}

		var validationErr *voyageapi.ValidationError
		if errors.As(err, &validationErr) {
			for _, issue := range validationErr.Issues {
				fmt.Fprintf(os.Stderr, "%s: %s\n", issue.Path, issue.Message)
			}
			return err
		}

		return err
	}

	fmt.Println("Voyage created")
	return nil
}

// applyDates сначала выбирает календарные дни пары, затем независимо
// правит время суток каждой границы.
func applyDates(selector *daterange.Selector, opts *options) error {
	if opts.departureDay != "" || opts.arrivalDay != "" {
		fromDay, err := parseDay(opts.departureDay, selector.Value().From)
		if err != nil {
			return fmt.Errorf("departure day: %w", err)
		}
		toDay, err := parseDay(opts.arrivalDay, selector.Value().To)
		if err != nil {
			return fmt.Errorf("arrival day: %w", err)
		}

		if err := selector.PickDays(fromDay, toDay); err != nil {
			return fmt.Errorf("pick days: %w", err)
		}
	}

	if opts.departureTime != "" {
		if err := selector.SetTime(daterange.EndpointFrom, opts.departureTime); err != nil {
			return fmt.Errorf("departure time: %w", err)
		}
	}
	if opts.arrivalTime != "" {
		if err := selector.SetTime(daterange.EndpointTo, opts.arrivalTime); err != nil {
			return fmt.Errorf("arrival time: %w", err)
		}
	}

	return nil
}

func parseDay(text string, fallback time.Time) (time.Time, error) {
	if text == "" {
		return fallback, nil
	}
	return time.ParseInLocation(dayLayout, text, time.Local)
}

func splitIDs(text string) []string {
	if text == "" {
		return nil
	}

	parts := strings.Split(text, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

type logNotifier struct {
	log logger.Logger
}

func (n logNotifier) Notify(message string) {
	n.log.Warn(message)
}
