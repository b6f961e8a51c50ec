package web

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/streamstats/exampledata"
	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/parser"
	"github.com/emiliopalmerini/streamstats/internal/web/templates"
)

const (
	sourceUpload  = "upload"
	sourceExample = "example"

	exampleNotice = "Example data loaded!"
)

// errNoFile is returned when a multipart request has no "file" field.
var errNoFile = errors.New("no file uploaded")

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, r, http.StatusOK, "")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, err := s.uploadedFile(w, r)
	if err != nil {
		s.renderIndex(w, r, uploadStatus(err), uploadMessage(err))
		return
	}
	defer file.Close()

	s.renderBuild(w, r, sourceUpload, file, "")
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	s.renderBuild(w, r, sourceExample, exampledata.Open(), exampleNotice)
}

func (s *Server) renderBuild(w http.ResponseWriter, r *http.Request, source string, in io.Reader, notice string) {
	ctx := r.Context()

	report, err := s.analytics.BuildReport(ctx, source, in)
	if err != nil {
		status := http.StatusInternalServerError
		if parser.IsLoadError(err) {
			status = http.StatusBadRequest
		}
		s.renderIndex(w, r, status, loadMessage(err))
		return
	}

	page := buildReportPage(report, notice)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Report(page).Render(ctx, w); err != nil {
		log.Error().Err(err).Str("render_id", report.ID).Msg("Failed to render report")
	}
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	page := templates.IndexPage{Error: message, MaxUploadMB: s.maxUploadBytes >> 20}
	if err := templates.Index(page).Render(r.Context(), w); err != nil {
		log.Error().Err(err).Msg("Failed to render index")
	}
}

// uploadedFile limits the request body and returns the "file" part.
func (s *Server) uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errNoFile
		}
		return nil, err
	}
	return file, nil
}

func uploadStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func uploadMessage(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("The file is larger than the %d MB upload limit.", tooLarge.Limit>>20)
	case errors.Is(err, errNoFile):
		return "Please choose a ViewingActivity.csv file to upload."
	default:
		return "The upload could not be read: " + err.Error()
	}
}

// loadMessage turns a load failure into a banner for the index page.
func loadMessage(err error) string {
	if parser.IsLoadError(err) {
		return "Could not read the viewing activity file: " + err.Error()
	}
	return "Something went wrong while building the report."
}

// chartsFor lists a profile's charts in page order.
func chartsFor(p analytics.ProfileReport) []analytics.Series {
	return []analytics.Series{p.Monthly, p.Weekly, p.Weekday}
}
