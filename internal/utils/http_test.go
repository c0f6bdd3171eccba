package utils

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	recorder := httptest.NewRecorder()

	n, err := WriteJSON(recorder, map[string]string{"message": "ok"}, 201)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected bytes to be written")
	}

	if recorder.Code != 201 {
		t.Errorf("expected status 201, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected application/json, got %s", contentType)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("expected message=ok, got %s", body["message"])
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	// NaN cannot be marshaled to JSON
	_, err := WriteJSON(recorder, math.NaN(), 200)
	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}

	if recorder.Code != 500 {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}
}
