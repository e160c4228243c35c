package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TestNewCollector_ReturnsNonNil はCollectorが正常に生成されることを検証する。
func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

// TestRecordDeliverySuccess_IncrementsCounterWithLabel は配信成功カウンタがテーマラベル付きで増加することを検証する。
func TestRecordDeliverySuccess_IncrementsCounterWithLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordDeliverySuccess("Peace")
	c.RecordDeliverySuccess("Peace")
	c.RecordDeliverySuccess("Faith")

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "morningword_delivery_success_total" {
			found = true
			if len(mf.GetMetric()) != 2 {
				t.Fatalf("expected 2 label combinations, got %d", len(mf.GetMetric()))
			}
			for _, m := range mf.GetMetric() {
				label := m.GetLabel()[0].GetValue()
				val := m.GetCounter().GetValue()
				switch label {
				case "Peace":
					if val != 2 {
						t.Errorf("delivery_success_total{theme=Peace} = %v, want 2", val)
					}
				case "Faith":
					if val != 1 {
						t.Errorf("delivery_success_total{theme=Faith} = %v, want 1", val)
					}
				default:
					t.Errorf("unexpected label value: %s", label)
				}
			}
		}
	}
	if !found {
		t.Error("morningword_delivery_success_total metric not found")
	}
}

// TestRecordDeliveryFailure_IncrementsCounter は配信失敗カウンタが増加することを検証する。
func TestRecordDeliveryFailure_IncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordDeliveryFailure("Love", "timeout")

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "morningword_delivery_fail_total" {
			found = true
			val := mf.GetMetric()[0].GetCounter().GetValue()
			if val != 1 {
				t.Errorf("delivery_fail_total = %v, want 1", val)
			}
		}
	}
	if !found {
		t.Error("morningword_delivery_fail_total metric not found")
	}
}

// TestRecordDueMatched_AddsCount は配信対象一致カウンタが加算されることを検証する。
func TestRecordDueMatched_AddsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordDueMatched(3)
	c.RecordDueMatched(2)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "morningword_due_matched_total" {
			found = true
			val := mf.GetMetric()[0].GetCounter().GetValue()
			if val != 5 {
				t.Errorf("due_matched_total = %v, want 5", val)
			}
		}
	}
	if !found {
		t.Error("morningword_due_matched_total metric not found")
	}
}

// TestRecordTickDuration_ObservesHistogram はティック処理時間のヒストグラムに値が記録されることを検証する。
func TestRecordTickDuration_ObservesHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTickDuration(100 * time.Millisecond)
	c.RecordTickDuration(2 * time.Second)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range metrics {
		if mf.GetName() == "morningword_tick_duration_seconds" {
			found = true
			h := mf.GetMetric()[0].GetHistogram()
			if h.GetSampleCount() != 2 {
				t.Errorf("sample_count = %d, want 2", h.GetSampleCount())
			}
			// 合計は0.1 + 2.0 = 2.1秒
			if h.GetSampleSum() < 2.0 || h.GetSampleSum() > 2.2 {
				t.Errorf("sample_sum = %v, want ~2.1", h.GetSampleSum())
			}
		}
	}
	if !found {
		t.Error("morningword_tick_duration_seconds metric not found")
	}
}

// TestRecordWelcomeCounters はウェルカムSMSカウンタが増加することを検証する。
func TestRecordWelcomeCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordWelcomeSent()
	c.RecordWelcomeSent()
	c.RecordWelcomeFailed()
	c.RecordTickSkipped()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	want := map[string]float64{
		"morningword_welcome_sent_total": 2,
		"morningword_welcome_fail_total": 1,
		"morningword_tick_skipped_total": 1,
	}
	for _, mf := range metrics {
		if expected, ok := want[mf.GetName()]; ok {
			val := mf.GetMetric()[0].GetCounter().GetValue()
			if val != expected {
				t.Errorf("%s = %v, want %v", mf.GetName(), val, expected)
			}
			delete(want, mf.GetName())
		}
	}
	for name := range want {
		t.Errorf("%s metric not found", name)
	}
}

// TestMetricsHandler_ReturnsPrometheusFormat は/metricsエンドポイントがPrometheus形式で返すことを検証する。
func TestMetricsHandler_ReturnsPrometheusFormat(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	// いくつかのメトリクスを記録
	c.RecordDeliverySuccess("Peace")
	c.RecordDeliveryFailure("Peace", "error")
	c.RecordDueMatched(1)
	c.RecordTickDuration(500 * time.Millisecond)

	handler := Handler(reg)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	// Prometheus形式のメトリクスが含まれていることを確認
	expectedMetrics := []string{
		"morningword_delivery_success_total",
		"morningword_delivery_fail_total",
		"morningword_due_matched_total",
		"morningword_tick_duration_seconds",
	}

	for _, metric := range expectedMetrics {
		if !strings.Contains(bodyStr, metric) {
			t.Errorf("response body does not contain %q", metric)
		}
	}
}

// TestCollector_ImplementsMetricsCollectorInterface はCollectorがMetricsCollectorインターフェースを実装することを検証する。
func TestCollector_ImplementsMetricsCollectorInterface(t *testing.T) {
	reg := prometheus.NewRegistry()
	var _ MetricsCollector = NewCollector(reg)
}

// TestMultipleCollectors_IndependentRegistries は異なるレジストリで独立に動作することを検証する。
func TestMultipleCollectors_IndependentRegistries(t *testing.T) {
	reg1 := prometheus.NewRegistry()
	reg2 := prometheus.NewRegistry()
	c1 := NewCollector(reg1)
	c2 := NewCollector(reg2)

	c1.RecordDueMatched(1)
	c2.RecordDueMatched(1)
	c2.RecordDueMatched(1)

	metrics1, _ := reg1.Gather()
	metrics2, _ := reg2.Gather()

	var val1, val2 float64
	for _, mf := range metrics1 {
		if mf.GetName() == "morningword_due_matched_total" {
			val1 = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	for _, mf := range metrics2 {
		if mf.GetName() == "morningword_due_matched_total" {
			val2 = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}

	if val1 != 1 {
		t.Errorf("reg1 due_matched = %v, want 1", val1)
	}
	if val2 != 2 {
		t.Errorf("reg2 due_matched = %v, want 2", val2)
	}
}
