package country

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const brazilFixture = `[{
	"name": {"common": "Brazil", "official": "Federative Republic of Brazil"},
	"capital": ["Brasília"],
	"population": 212559417,
	"region": "Americas",
	"subregion": "South America",
	"area": 8515767,
	"languages": {"por": "Portuguese"}
}]`

func TestFetchCountrySummary(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(brazilFixture)); err != nil {
			t.Errorf("write fixture: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.FetchCountrySummary(context.Background(), "brazil")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotPath != "/name/brazil" {
		t.Errorf("Expected path /name/brazil, got %q", gotPath)
	}
	if !strings.Contains(gotQuery, "fields=name,capital,population,region,subregion,area,languages") {
		t.Errorf("Expected fields filter in query, got %q", gotQuery)
	}

	want := "📍 **Brazil**\n🏛️ **Capital:** Brasília\n👥 **População:** 212,559,417 habitantes\n🌍 **Região:** Americas (South America)\n📏 **Área:** 8,515,767 km²\n🗣️ **Idiomas:** Portuguese"
	if got != want {
		t.Errorf("Summary mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestFetchCountrySummary_MissingFieldsDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`[{"name": {"common": "Nowhere"}}]`)); err != nil {
			t.Errorf("write fixture: %v", err)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.FetchCountrySummary(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, want := range []string{"Capital:** N/A", "Região:** N/A (N/A)", "Idiomas:** N/A", "População:** 0 habitantes"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in summary, got %q", want, got)
		}
	}
}

func TestFetchCountrySummary_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantIn  string
	}{
		{
			"not found status",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"status": 404}`, http.StatusNotFound)
			},
			"unexpected status 404",
		},
		{
			"empty result array",
			func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte(`[]`)); err != nil {
					t.Errorf("write fixture: %v", err)
				}
			},
			"empty result",
		},
		{
			"malformed json",
			func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte(`{not json`)); err != nil {
					t.Errorf("write fixture: %v", err)
				}
			},
			"decode country response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			_, err := c.FetchCountrySummary(context.Background(), "atlantis")
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("Expected error containing %q, got %q", tt.wantIn, err)
			}
		})
	}
}

func TestFetchCountrySummary_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond)
	if _, err := c.FetchCountrySummary(context.Background(), "brazil"); err == nil {
		t.Fatal("Expected a timeout error")
	}
}
