package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	EstimatesComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimates_computed_total",
			Help: "Total number of estimate calculations by flow (preview or submit)",
		},
		[]string{"flow"},
	)
	DocumentsRendered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "estimate_documents_rendered_total",
			Help: "Total number of estimate documents rendered and stored",
		},
	)
)

func InitMetrics() {
	if err := prometheus.Register(EstimatesComputed); err != nil {
		log.Error().Err(err).Msg("Failed to register EstimatesComputed metric")
	}
	if err := prometheus.Register(DocumentsRendered); err != nil {
		log.Error().Err(err).Msg("Failed to register DocumentsRendered metric")
	}
}
