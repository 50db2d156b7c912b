package application

import (
	"context"
	"time"

	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/luxurylounger/payment-token-service/token-service/gateway"
)

// gatewayOutcome is one completion of a gateway call
type gatewayOutcome struct {
	result *gateway.Result
	err    error
}

// awaitGateway races a callback-based gateway call against a deadline timer
// and the request context. The first completion wins. The callback feeds a
// one-slot buffered channel, so a callback that fires after the timer has
// already won is absorbed without blocking and without producing a second
// outcome.
func awaitGateway(ctx context.Context, timeout time.Duration, invoke func(gateway.Callback)) (*gateway.Result, error) {
	done := make(chan gatewayOutcome, 1)

	invoke(func(result *gateway.Result, err error) {
		select {
		case done <- gatewayOutcome{result: result, err: err}:
		default:
			// a second callback invocation; the outcome is already decided
		}
	})

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.result, out.err
	case <-timer.C:
		return nil, domain.ErrTimeout
	case <-ctx.Done():
		return nil, domain.NewUnexpectedError(ctx.Err())
	}
}
