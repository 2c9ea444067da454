package voyageapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"voyage/internal/entities"
	"voyage/internal/generated/dto"
	"voyage/internal/schedule/submit"
	retrierconfig "voyage/pkg/retrier"
	"voyage/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "voyage-api"
)

const (
	vesselsPath   = "/vessels"
	unitTypesPath = "/unittypes"
	voyagesPath   = "/voyages"
	voyagePath    = "/voyage"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway - HTTP клиент API рейсов. Чтения ретраятся с backoff,
// запись создания рейса выполняется строго один раз.
type Gateway struct {
	baseURL string
	client  httpClient
	retrier retrier
}

func New(baseURL string, client httpClient) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Vessels(ctx context.Context) ([]entities.Vessel, error) {
	var models []dto.Vessel

	err := g.executeWithMetrics(ctx, "GetVessels", func(ctx context.Context) error {
		return g.getJSON(ctx, vesselsPath, &models)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway voyageapi, get vessels: %w", err)
	}

	return toVesselList(models), nil
}

func (g *Gateway) UnitTypes(ctx context.Context) ([]entities.UnitType, error) {
	var models []dto.UnitType

	err := g.executeWithMetrics(ctx, "GetUnitTypes", func(ctx context.Context) error {
		return g.getJSON(ctx, unitTypesPath, &models)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway voyageapi, get unit types: %w", err)
	}

	return toUnitTypeList(models), nil
}

// ReferenceData забирает оба справочника одним комбинированным вызовом,
// форма получает либо полную пару, либо ошибку.
func (g *Gateway) ReferenceData(ctx context.Context) ([]entities.Vessel, []entities.UnitType, error) {
	var (
		vessels   []entities.Vessel
		unitTypes []entities.UnitType
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		vessels, err = g.Vessels(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		unitTypes, err = g.UnitTypes(egCtx)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return vessels, unitTypes, nil
}

func (g *Gateway) Voyages(ctx context.Context) ([]entities.VoyageDetails, error) {
	var models []dto.Voyage

	err := g.executeWithMetrics(ctx, "GetVoyages", func(ctx context.Context) error {
		return g.getJSON(ctx, voyagesPath, &models)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway voyageapi, get voyages: %w", err)
	}

	return toVoyageDetailsList(models)
}

// CreateVoyage выполняет единственный PUT без ретраев, чтобы один сабмит
// не превратился в несколько созданных рейсов.
func (g *Gateway) CreateVoyage(ctx context.Context, payload submit.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gateway voyageapi, marshal create payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.baseURL+voyagePath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gateway voyageapi, build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		GatewayRequestDuration.WithLabelValues(serviceName, "CreateVoyage", "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("gateway voyageapi, create voyage: %w", err)
	}
	defer resp.Body.Close()

	GatewayRequestDuration.WithLabelValues(serviceName, "CreateVoyage", strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusCreated {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	var issues []dto.ValidationIssue
	if err := json.Unmarshal(respBody, &issues); err == nil && len(issues) > 0 {
		return &ValidationError{
			StatusCode: resp.StatusCode,
			Issues:     issues,
		}
	}

	return &StatusError{StatusCode: resp.StatusCode}
}

func (g *Gateway) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests ||
			statusErr.StatusCode >= http.StatusInternalServerError
	}

	// сетевые ошибки без статуса считаем временными
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.StatusCode)
	}

	return "error"
}
