package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfTokenIssue is perf metric
	PerfTokenIssue = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_jwt_issue",
		Help:         "perf_jwt_issue provides the sample metrics of token issuance",
		RequiredTags: []string{"result"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfTokenIssue,
}
