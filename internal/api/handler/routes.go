package handler

import (
	"net/http"

	"github.com/chasedndt/sneaker-inventory-api/internal/api/handler/router"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/aggregating"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/formatting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service aggregating.Aggregator, formatter formatting.Formatter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/snapshot",
			Method:  http.MethodPost,
			Handler: ComputeMetricsSnapshot(service, formatter),
		},
	}
}

func Currency(service converting.Converter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/currency/rates",
			Method:  http.MethodGet,
			Handler: GetRates(service),
		},
		{
			Path:    "/v1/currency/convert",
			Method:  http.MethodGet,
			Handler: ConvertAmount(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
