package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// loginAttempts counts login outcomes per method. method is "local",
// "google" or "facebook"; outcome is "success" or "failure".
var loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "identity_login_attempts_total",
	Help: "Login attempts by method and outcome.",
}, []string{"method", "outcome"})

// registrations counts registration outcomes.
var registrations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "identity_registrations_total",
	Help: "Registration attempts by outcome.",
}, []string{"outcome"})

func observeLogin(method string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	loginAttempts.WithLabelValues(method, outcome).Inc()
}
