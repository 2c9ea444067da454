package voyage

import (
	"context"
	"fmt"
	"time"

	"voyage/internal/entities"
)

type Voyage struct {
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	publisher EventPublisher,
	txManager TxManager,
) *Voyage {
	return &Voyage{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

func (v *Voyage) CreateVoyage(ctx context.Context, voyageModify entities.VoyageModify) (*entities.Voyage, error) {
	if voyageModify.PortOfLoading == nil ||
		voyageModify.PortOfDischarge == nil ||
		voyageModify.VesselID == nil ||
		voyageModify.ScheduledDeparture == nil ||
		voyageModify.ScheduledArrival == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidPort(*voyageModify.PortOfLoading) || !isValidPort(*voyageModify.PortOfDischarge) {
		return nil, ErrInvalidPort
	}

	if *voyageModify.PortOfLoading == *voyageModify.PortOfDischarge {
		return nil, ErrSamePorts
	}

	var createdVoyage *entities.Voyage
	err := v.txManager.Do(ctx, func(ctx context.Context) error {
		voyageEntity, err := v.repository.Create(ctx, voyageModify)
		if err != nil {
			return fmt.Errorf("create voyage: %w", err)
		}

		err = v.repository.ConnectUnitTypes(ctx, voyageEntity.ID, voyageModify.UnitTypeIDs)
		if err != nil {
			return fmt.Errorf("connect unit types: %w", err)
		}

		createdVoyage = voyageEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	voyagesCreated.Inc()

	// рейс уже закоммичен, событие best effort, publisher сам логирует сбои
	_ = v.publisher.VoyageCreated(ctx, *createdVoyage)

	return createdVoyage, nil
}

func (v *Voyage) GetVoyages(ctx context.Context) ([]entities.VoyageDetails, error) {
	voyages, err := v.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get voyages: %w", err)
	}

	return voyages, nil
}

// RefreshUpcomingDepartures пересчитывает гейдж предстоящих отправлений.
// Вызывается фоновой задачей и консьюмером события voyage.created.
func (v *Voyage) RefreshUpcomingDepartures(ctx context.Context) (int64, error) {
	count, err := v.repository.CountUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count upcoming voyages: %w", err)
	}

	upcomingVoyages.Set(float64(count))
	return count, nil
}
