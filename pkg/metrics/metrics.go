package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nordnotes", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nordnotes", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	MarketOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nordnotes", Name: "marketplace_operations_total", Help: "Successful marketplace mutations by operation."},
		[]string{"op"},
	)
	MarketRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nordnotes", Name: "marketplace_rejections_total", Help: "Rejected marketplace operations by operation and reason."},
		[]string{"op", "reason"},
	)
	PlatformRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nordnotes", Name: "marketplace_revenue_total", Help: "Sum of platform fees collected, in NOK."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(MarketOperations)
	reg.MustRegister(MarketRejections)
	reg.MustRegister(PlatformRevenue)
}
