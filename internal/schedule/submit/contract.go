//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=submit_test
package submit

import "context"

type VoyageCreator interface {
	CreateVoyage(ctx context.Context, payload Payload) error
}

type CacheInvalidator interface {
	Invalidate(key string)
}

type Notifier interface {
	Notify(message string)
}
