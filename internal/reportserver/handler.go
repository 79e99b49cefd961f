package reportserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"annostat/internal/duckdb"
	"annostat/internal/runner"
)

const reportTitle = "Annotation statistics"

// NewHandler builds the HTTP handler for the report page, the results
// manifest, and (when configured) the DuckDB history.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.ResultsPath == "" {
		return nil, errors.New("reportserver: results path is required")
	}

	mux := http.NewServeMux()
	mux.Handle("/", getOnly(serveReport(cfg.ResultsPath)))
	mux.Handle("/results.json", getOnly(serveFile(cfg.ResultsPath, "application/json")))
	if cfg.DBPath != "" {
		mux.Handle("/history.json", getOnly(serveHistory(cfg.DBPath)))
		mux.Handle("/data/db.duckdb", getOnly(serveFile(cfg.DBPath, "application/octet-stream")))
	}
	return mux, nil
}

// serveReport renders the HTML report from the current results file.
func serveReport(resultsPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		results, err := runner.LoadResults(resultsPath)
		if err != nil {
			http.Error(w, "load results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := runner.ReportPage(reportTitle, results).Render(r.Context(), w); err != nil {
			http.Error(w, "render report: "+err.Error(), http.StatusInternalServerError)
		}
	})
}

// serveHistory returns stored history rows as JSON, filtered by ?corpus=.
func serveHistory(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		db, err := duckdb.Open(r.Context(), dbPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer db.Close()
		rows, err := duckdb.History(r.Context(), db, r.URL.Query().Get("corpus"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []duckdb.HistoryRow{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	})
}

// serveFile serves a file from disk with a fixed content type.
func serveFile(path, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeFile(w, r, path)
	})
}

// getOnly rejects every method except GET and HEAD.
func getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}
