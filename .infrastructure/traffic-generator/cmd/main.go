package main

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Общее количество запросов к API рейсов",
	}, []string{"path", "status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

var readPaths = []string{"/voyages", "/vessels", "/unittypes", "/ping"}

func hitAPI(client *http.Client, baseURL string) {
	path := readPaths[rand.Intn(len(readPaths))]

	start := time.Now()
	resp, err := client.Get(baseURL + path)
	requestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		requestsCounter.WithLabelValues(path, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	requestsCounter.WithLabelValues(path, fmt.Sprintf("%d", resp.StatusCode)).Inc()
}

func main() {
	baseURL := os.Getenv("VOYAGE_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &http.Client{Timeout: 5 * time.Second}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		hitAPI(client, baseURL)
		time.Sleep(5 * time.Second)
	}
}
