// Package metrics holds the application level prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission results.
const (
	ResultSent    = "sent"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

// ContactSubmissions counts contact form submissions by result.
var ContactSubmissions = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Number of contact form submissions, differentiated by result.",
	},
	[]string{"result"},
)
