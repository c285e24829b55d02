package prometheus

import (
	"fmt"
	"time"
)

// AppMetrics holds all application metrics.
type AppMetrics struct {
	// HTTP Layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Extraction Layer
	ExtractionsTotal   CounterVec
	ExtractionDuration HistogramVec
	ExtractedTerms     HistogramVec

	// Diagnosis Layer
	DiagnosisRequestsTotal CounterVec
	DiagnosisDuration      HistogramVec
	DiagnosisCandidates    HistogramVec

	// Graph Layer
	GraphNodesTotal      GaugeVec
	GraphEdgesTotal      GaugeVec
	GraphQueryDuration   HistogramVec
	GraphRebuildTotal    CounterVec
	GraphRebuildDuration HistogramVec

	// Session Layer
	SessionOperationsTotal CounterVec

	// System Health
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

// Default Buckets
var (
	DefaultHTTPDurationBuckets    = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultRebuildDurationBuckets = []float64{1, 5, 10, 30, 60, 120, 300, 600}
	DefaultDBDurationBuckets      = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
	DefaultCountBuckets           = []float64{0, 1, 2, 3, 5, 10, 20}
)

// NewAppMetrics registers all metrics and returns AppMetrics struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method", "path")

	// Extraction
	m.ExtractionsTotal = collector.RegisterCounter("extractions_total", "Symptom extraction runs", "mode", "dimension")
	m.ExtractionDuration = collector.RegisterHistogram("extraction_duration_seconds", "Symptom extraction duration", DefaultDBDurationBuckets, "mode")
	m.ExtractedTerms = collector.RegisterHistogram("extracted_terms_count", "Terms extracted per run", DefaultCountBuckets, "dimension")

	// Diagnosis
	m.DiagnosisRequestsTotal = collector.RegisterCounter("diagnosis_requests_total", "Diagnosis requests", "status")
	m.DiagnosisDuration = collector.RegisterHistogram("diagnosis_duration_seconds", "Diagnosis duration", DefaultHTTPDurationBuckets, "status")
	m.DiagnosisCandidates = collector.RegisterHistogram("diagnosis_candidates_count", "Candidate diseases per diagnosis", DefaultCountBuckets)

	// Graph
	m.GraphNodesTotal = collector.RegisterGauge("graph_nodes_total", "Graph nodes total", "node_type")
	m.GraphEdgesTotal = collector.RegisterGauge("graph_edges_total", "Graph edges total", "edge_type")
	m.GraphQueryDuration = collector.RegisterHistogram("graph_query_duration_seconds", "Graph query duration", DefaultDBDurationBuckets, "query_type")
	m.GraphRebuildTotal = collector.RegisterCounter("graph_rebuild_total", "Graph rebuild runs", "status")
	m.GraphRebuildDuration = collector.RegisterHistogram("graph_rebuild_duration_seconds", "Graph rebuild duration", DefaultRebuildDurationBuckets, "status")

	// Session
	m.SessionOperationsTotal = collector.RegisterCounter("session_operations_total", "Session store operations", "operation", "status")

	// System Health
	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Health check status (1=up, 0=down)", "component")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Total errors", "component", "error_type")

	return m
}

// Helpers

func RecordHTTPRequest(metrics *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	status := fmt.Sprintf("%d", statusCode)
	metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordExtraction(metrics *AppMetrics, mode, dimension string, terms int, duration time.Duration) {
	metrics.ExtractionsTotal.WithLabelValues(mode, dimension).Inc()
	metrics.ExtractionDuration.WithLabelValues(mode).Observe(duration.Seconds())
	metrics.ExtractedTerms.WithLabelValues(dimension).Observe(float64(terms))
}

func RecordDiagnosis(metrics *AppMetrics, success bool, candidates int, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	metrics.DiagnosisRequestsTotal.WithLabelValues(status).Inc()
	metrics.DiagnosisDuration.WithLabelValues(status).Observe(duration.Seconds())
	metrics.DiagnosisCandidates.WithLabelValues().Observe(float64(candidates))
}

func RecordGraphRebuild(metrics *AppMetrics, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	metrics.GraphRebuildTotal.WithLabelValues(status).Inc()
	metrics.GraphRebuildDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func RecordSessionOperation(metrics *AppMetrics, operation string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.SessionOperationsTotal.WithLabelValues(operation, status).Inc()
}

func RecordError(metrics *AppMetrics, component, errorType string) {
	metrics.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

//Personal.AI order the ending
