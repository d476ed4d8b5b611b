package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/phrase-evolver/genetic"
)

const namespace = "phrase_evolver"

// Collector exports evolution progress as Prometheus metrics
type Collector struct {
	registry    *prometheus.Registry
	generation  prometheus.Gauge
	bestFitness prometheus.Gauge
	meanFitness prometheus.Gauge
	generations prometheus.Counter
	converged   prometheus.Gauge
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation",
			Help:      "Generation number of the last evaluated population.",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_fitness",
			Help:      "Fitness of the best individual in the last evaluated population.",
		}),
		meanFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_fitness",
			Help:      "Mean fitness of the last evaluated population.",
		}),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Number of evaluated generations.",
		}),
		converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "converged",
			Help:      "1 once the target phrase has been produced.",
		}),
	}

	c.registry.MustRegister(c.generation, c.bestFitness, c.meanFitness, c.generations, c.converged)
	return c
}

// Observe implements genetic.Sink
func (c *Collector) Observe(e genetic.Event) {
	c.generation.Set(float64(e.Generation))
	c.bestFitness.Set(e.BestFitness)
	c.meanFitness.Set(e.Stats.Mean)
	c.generations.Inc()
	if e.Final {
		c.converged.Set(1)
	}
}

// Registry returns the registry holding the collector's metrics
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
