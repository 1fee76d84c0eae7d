package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce     sync.Once
	releasePurchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "editions",
			Subsystem: "release",
			Name:      "purchases_total",
			Help:      "Count of release purchases classified by result",
		},
		[]string{"result"},
	)

	releaseInits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "editions",
			Subsystem: "release",
			Name:      "inits_total",
			Help:      "Count of initialized releases",
		},
	)

	releaseCloses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "editions",
			Subsystem: "release",
			Name:      "closes_total",
			Help:      "Count of closed releases",
		},
	)

	releasePurchasePrice = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "editions",
			Subsystem: "release",
			Name:      "purchase_price",
			Help:      "Price paid per successful purchase in payment denom base units",
			Buckets:   prometheus.ExponentialBuckets(1_000, 10, 8),
		},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(releasePurchases, releaseInits, releaseCloses, releasePurchasePrice)
	})
}

func PurchasesCounter() *prometheus.CounterVec {
	ensureRegistered()
	return releasePurchases
}

func InitsCounter() prometheus.Counter {
	ensureRegistered()
	return releaseInits
}

func ClosesCounter() prometheus.Counter {
	ensureRegistered()
	return releaseCloses
}

func PurchasePriceObserver() prometheus.Observer {
	ensureRegistered()
	return releasePurchasePrice
}
