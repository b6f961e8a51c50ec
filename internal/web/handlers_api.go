package web

import (
	"io"
	"net/http"

	"github.com/emiliopalmerini/streamstats/exampledata"
	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/parser"
)

// ProfileSeries holds the three per-profile series of the API response.
type ProfileSeries struct {
	Summary analytics.ProfileSummary `json:"summary"`
	Monthly analytics.Series         `json:"monthly"`
	Weekly  analytics.Series         `json:"weekly"`
	Weekday analytics.Series         `json:"weekday"`
}

// ReportResponse is the JSON body of POST /api/report.
type ReportResponse struct {
	ID         string                   `json:"id"`
	Source     string                   `json:"source"`
	Records    int                      `json:"records"`
	Profiles   []string                 `json:"profiles"`
	Preview    []analytics.PreviewRow   `json:"preview"`
	Series     map[string]ProfileSeries `json:"series"`
	Comparison analytics.Comparison     `json:"comparison"`
}

func newReportResponse(report *analytics.Report) ReportResponse {
	resp := ReportResponse{
		ID:         report.ID,
		Source:     report.Source,
		Records:    report.Records,
		Profiles:   make([]string, 0, len(report.Profiles)),
		Preview:    report.Preview,
		Series:     make(map[string]ProfileSeries, len(report.Profiles)),
		Comparison: report.Comparison,
	}
	for _, p := range report.Profiles {
		resp.Profiles = append(resp.Profiles, p.Summary.Profile)
		resp.Series[p.Summary.Profile] = ProfileSeries{
			Summary: p.Summary,
			Monthly: p.Monthly,
			Weekly:  p.Weekly,
			Weekday: p.Weekday,
		}
	}
	return resp
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	source := sourceExample
	var in io.Reader
	if r.URL.Query().Get("example") == "true" {
		in = exampledata.Open()
	} else {
		file, err := s.uploadedFile(w, r)
		if err != nil {
			SendJSONError(w, uploadStatus(err), err, uploadMessage(err))
			return
		}
		defer file.Close()
		source = sourceUpload
		in = file
	}

	report, err := s.analytics.BuildReport(r.Context(), source, in)
	if err != nil {
		if parser.IsLoadError(err) {
			SendJSONError(w, http.StatusBadRequest, err, parser.LoadErrorKind(err))
			return
		}
		SendJSONError(w, http.StatusInternalServerError, err, "failed to build report")
		return
	}

	SendJSON(w, http.StatusOK, newReportResponse(report))
}
