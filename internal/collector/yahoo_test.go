package collector

import (
	"testing"
)

func TestDecodeChart_EmptyQuoteSeries(t *testing.T) {
	// Timestamps present but no quote series in the indicators block.
	body := []byte(`{"chart":{"result":[{"timestamp":[1700000000,1700000900],"indicators":{"quote":[]}}],"error":null}}`)

	bars, err := decodeChart(body)
	if err != nil {
		t.Fatalf("decodeChart: %v", err)
	}
	if len(bars) != 0 {
		t.Fatalf("expected no bars, got %d", len(bars))
	}
}

func TestDecodeChart_ShortFieldSeries(t *testing.T) {
	// Volume array shorter than timestamps must not panic.
	body := []byte(`{"chart":{"result":[{"timestamp":[1700000000,1700000900],"indicators":{"quote":[{"open":[100,101],"high":[102,103],"low":[99,100],"close":[101,102],"volume":[5000]}]}}],"error":null}}`)

	bars, err := decodeChart(body)
	if err != nil {
		t.Fatalf("decodeChart: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Volume != 0 {
		t.Errorf("missing volume entry should decode as 0, got %v", bars[1].Volume)
	}
}

func TestDecodeChart_SkipsNullBars(t *testing.T) {
	body := []byte(`{"chart":{"result":[{"timestamp":[1700000000,1700000900,1700001800],"indicators":{"quote":[{"open":[100,null,101],"high":[102,null,103],"low":[99,null,100],"close":[101,null,102],"volume":[5000,null,6000]}]}}],"error":null}}`)

	bars, err := decodeChart(body)
	if err != nil {
		t.Fatalf("decodeChart: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars after skipping null bar, got %d", len(bars))
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars should be chronological")
	}
}

func TestDecodeChart_APIError(t *testing.T) {
	body := []byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)

	if _, err := decodeChart(body); err == nil {
		t.Fatal("expected error for chart API error payload")
	}
}
