package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","city":"Mumbai","regionName":"Maharashtra","country":"India"}`))
	}))
	defer srv.Close()

	r := NewIPAPIResolverWithBaseURL(srv.URL, nil)
	got := r.Resolve(context.Background(), "203.0.113.7")
	assert.Equal(t, "Mumbai, Maharashtra, India", got)
}

func TestResolver_LookupFailureFallsBackToUnknown(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success payload status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"fail"}`))
			},
		},
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			r := NewIPAPIResolverWithBaseURL(srv.URL, nil)
			assert.Equal(t, UnknownLocation, r.Resolve(context.Background(), "203.0.113.7"))
		})
	}
}

func TestResolver_NetworkErrorFallsBackToUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	r := NewIPAPIResolverWithBaseURL(srv.URL, nil)
	assert.Equal(t, UnknownLocation, r.Resolve(context.Background(), "203.0.113.7"))
}
