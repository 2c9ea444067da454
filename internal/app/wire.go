//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"voyage/internal/gateway/kafka/voyage_events"
	unittypes_get "voyage/internal/handlers/rest/unittypes_get"
	vessels_get "voyage/internal/handlers/rest/vessels_get"
	voyage_put "voyage/internal/handlers/rest/voyage_put"
	voyages_get "voyage/internal/handlers/rest/voyages_get"
	"voyage/internal/handlers/tasks/schedule_metrics"
	"voyage/internal/pkg/config"

	unitTypeRepo "voyage/internal/repository/unittype"
	vesselRepo "voyage/internal/repository/vessel"
	voyageRepo "voyage/internal/repository/voyage"
	refdataService "voyage/internal/service/refdata"
	voyageService "voyage/internal/service/voyage"

	"voyage/pkg/background"
	"voyage/pkg/logger"
	"voyage/pkg/querier"
	"voyage/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MetricsInterval time.Duration
)

type Application struct {
	ServiceVoyage     ServiceVoyage
	ServiceRefData    ServiceRefData
	BackgroundWorkers *background.Worker
}

type ServiceVoyage interface {
	voyage_put.Service
	voyages_get.Service
}

type ServiceRefData interface {
	vessels_get.Service
	unittypes_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMetricsInterval,

		provideVoyageRepository,
		provideVesselRepository,
		provideUnitTypeRepository,

		provideEventPublisher,
		provideServiceVoyage,
		provideServiceRefData,

		provideScheduleMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceVoyage), new(*voyageService.Voyage)),
		wire.Bind(new(ServiceRefData), new(*refdataService.RefData)),

		wire.Bind(new(voyageService.Repository), new(*voyageRepo.Repository)),
		wire.Bind(new(voyageService.EventPublisher), new(*voyage_events.Publisher)),
		wire.Bind(new(refdataService.VesselRepository), new(*vesselRepo.Repository)),
		wire.Bind(new(refdataService.UnitTypeRepository), new(*unitTypeRepo.Repository)),

		wire.Bind(new(voyageService.TxManager), new(*tx.Manager)),

		wire.Bind(new(schedule_metrics.Service), new(*voyageService.Voyage)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	VoyageService *voyageService.Voyage
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-voyage-created)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideVoyageRepository,
		provideEventPublisher,
		provideServiceVoyage,

		wire.Bind(new(voyageService.Repository), new(*voyageRepo.Repository)),
		wire.Bind(new(voyageService.EventPublisher), new(*voyage_events.Publisher)),
		wire.Bind(new(voyageService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideVoyageRepository(querier *querier.Querier) *voyageRepo.Repository {
	return voyageRepo.New(querier)
}

func provideVesselRepository(querier *querier.Querier) *vesselRepo.Repository {
	return vesselRepo.New(querier)
}

func provideUnitTypeRepository(querier *querier.Querier) *unitTypeRepo.Repository {
	return unitTypeRepo.New(querier)
}

func provideEventPublisher(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *voyage_events.Publisher {
	return voyage_events.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceVoyage(
	repository voyageService.Repository,
	publisher voyageService.EventPublisher,
	txManager voyageService.TxManager,
) *voyageService.Voyage {
	return voyageService.New(repository, publisher, txManager)
}

func provideServiceRefData(
	vesselRepository refdataService.VesselRepository,
	unitTypeRepository refdataService.UnitTypeRepository,
) *refdataService.RefData {
	return refdataService.New(vesselRepository, unitTypeRepository)
}

func provideMetricsInterval(cfg *config.Config) MetricsInterval {
	return MetricsInterval(cfg.Tasks.ScheduleMetricsInterval)
}

func provideScheduleMetricsTask(
	log logger.Logger,
	voyageService schedule_metrics.Service,
	interval MetricsInterval,
) *schedule_metrics.ScheduleMetrics {
	return schedule_metrics.NewScheduleMetrics(log, voyageService, time.Duration(interval))
}

func provideTaskList(
	scheduleMetricsTask *schedule_metrics.ScheduleMetrics,
) []background.Task {
	return []background.Task{
		scheduleMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
