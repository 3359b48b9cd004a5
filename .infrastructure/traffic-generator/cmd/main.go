package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simulator_pings_total",
		Help: "Отправленные пинги по коду ответа",
	}, []string{"status"})

	pingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulator_ping_duration_seconds",
		Help:    "Длительность POST /orders/{orderId}/positions",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.3, 1},
	})
)

type positionBody struct {
	DriverID       string  `json:"driverId"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	Speed          float64 `json:"speed"`
	Heading        float64 `json:"heading"`
	TS             string  `json:"ts"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

// driver едет по прямой с небольшим шумом, иногда сходя с курса.
type driver struct {
	id      string
	orderID string
	lat     float64
	lng     float64
	heading float64
	seq     int
}

func (d *driver) step(speedKmh float64, interval time.Duration) {
	if rand.Float64() < 0.05 {
		d.heading = math.Mod(d.heading+90+rand.Float64()*180, 360)
	}

	km := speedKmh * interval.Hours()
	rad := d.heading * math.Pi / 180
	d.lat += km / 111.195 * math.Cos(rad)
	d.lng += km / (111.195 * math.Cos(d.lat*math.Pi/180)) * math.Sin(rad)
	d.seq++
}

func (d *driver) payload(speedKmh float64) ([]byte, error) {
	return json.Marshal(positionBody{
		DriverID:       d.id,
		Lat:            d.lat,
		Lng:            d.lng,
		Speed:          speedKmh / 3.6,
		Heading:        d.heading,
		TS:             time.Now().UTC().Format(time.RFC3339Nano),
		IdempotencyKey: d.id + "-" + strconv.Itoa(d.seq),
	})
}

func send(client *http.Client, url string, body []byte) {
	start := time.Now()
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	pingDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		pingsTotal.WithLabelValues("error").Inc()
		return
	}
	_ = resp.Body.Close()
	pingsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	baseURL := flag.String("target", "http://localhost:8080", "адрес tracking сервиса")
	drivers := flag.Int("drivers", 10, "число водителей")
	interval := flag.Duration("interval", 2*time.Second, "период пинга")
	speed := flag.Float64("speed", 30, "скорость, км/ч")
	metricsAddr := flag.String("metrics", ":2112", "адрес /metrics")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		//nolint:gosec // локальный генератор нагрузки
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}

	fleet := make([]*driver, *drivers)
	for i := range fleet {
		fleet[i] = &driver{
			id:      fmt.Sprintf("driver-%d", i+1),
			orderID: fmt.Sprintf("order-%d", i+1),
			lat:     55.75 + rand.Float64()*0.1,
			lng:     37.60 + rand.Float64()*0.1,
			heading: rand.Float64() * 360,
		}
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for range ticker.C {
		for _, d := range fleet {
			d.step(*speed, *interval)
			body, err := d.payload(*speed)
			if err != nil {
				log.Printf("marshal: %v", err)
				continue
			}
			go send(client, fmt.Sprintf("%s/orders/%s/positions", *baseURL, d.orderID), body)
		}
	}
}
