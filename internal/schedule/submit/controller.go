package submit

import (
	"context"
	"sync/atomic"
	"time"

	"voyage/internal/schedule/form"
	"voyage/internal/schedule/querycache"
)

// Controller превращает валидный черновик в ровно один запрос создания
// и сводит локальное состояние после ответа. Одновременно живет не
// больше одной отправки на экземпляр формы.
type Controller struct {
	form     *form.Model
	creator  VoyageCreator
	cache    CacheInvalidator
	notifier Notifier
	onClose  func()
	nowFn    func() time.Time

	inFlight atomic.Bool
	closed   atomic.Bool
}

func NewController(
	formModel *form.Model,
	creator VoyageCreator,
	cache CacheInvalidator,
	notifier Notifier,
	onClose func(),
) *Controller {
	return &Controller{
		form:     formModel,
		creator:  creator,
		cache:    cache,
		notifier: notifier,
		onClose:  onClose,
		nowFn:    time.Now,
	}
}

// Submit валидирует черновик и выполняет запрос создания. До сети не
// доходит ни невалидный черновик, ни повторный клик во время уже
// летящей отправки. При успехе кеш списка инвалидируется, черновик
// сбрасывается и форма закрывается, при ошибке черновик сохраняется
// нетронутым для повтора.
func (c *Controller) Submit(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClosed
	}

	if !c.form.Validate() {
		return ErrDraftInvalid
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	payload := buildPayload(c.form.Draft())

	err := c.creator.CreateVoyage(ctx, payload)

	// форма могла закрыться пока запрос летел, поздний ответ не должен
	// трогать ее состояние
	if c.closed.Load() {
		return ErrClosed
	}

	if err != nil {
		if c.notifier != nil {
			c.notifier.Notify("failed to create voyage")
		}
		return err
	}

	c.cache.Invalidate(querycache.KeyVoyages)
	c.form.Reset(c.nowFn())
	if c.onClose != nil {
		c.onClose()
	}

	return nil
}

// Close помечает контроллер закрытым, дальнейшие и поздние завершения
// становятся no-op.
func (c *Controller) Close() {
	c.closed.Store(true)
}
