package wehttp

import (
	"net/http"

	"github.com/goccy/go-json"
)

type HealthStatus struct {
	Status string `json:"status"`
}

var Healthy = HealthStatus{Status: "ok"}

// HealthBody is the exact liveness payload, {"status":"ok"}.
func HealthBody() []byte {
	body, err := json.Marshal(Healthy)
	if err != nil {
		panic(err)
	}

	return body
}

// Health answers every request with the static liveness payload. It touches no
// dependencies, so it has no failure branch.
func Health() http.HandlerFunc {
	body := HealthBody()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
