package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/npd-cli/internal/ingest"
	"github.com/sells-group/npd-cli/internal/model"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type errorResponse struct {
	Error string `json:"error"`
}

type brandSummary struct {
	Name        model.Brand        `json:"name"`
	Slug        string             `json:"slug"`
	Categories  []string           `json:"categories"`
	MRPRange    string             `json:"mrpRange"`
	Established []string           `json:"established"`
	Exploratory []string           `json:"exploratory"`
	Competition map[string]float64 `json:"competition"`
}

// signalsRequest is the JSON body accepted by the analyze route.
type signalsRequest struct {
	Signals []model.RawSignal `json:"signals"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) brands(w http.ResponseWriter, _ *http.Request) {
	tax := s.engine.Taxonomy()
	out := make([]brandSummary, 0, len(tax.Brands))
	for _, b := range tax.Brands {
		sum := brandSummary{
			Name:        b.Brand,
			Slug:        b.Brand.Slug(),
			Categories:  b.Categories,
			MRPRange:    b.MRPRange,
			Competition: b.Competition,
		}
		for _, p := range b.Established {
			sum.Established = append(sum.Established, p.Label)
		}
		for _, p := range b.Exploratory {
			sum.Exploratory = append(sum.Exploratory, p.Label)
		}
		out = append(out, sum)
	}
	writeJSON(w, http.StatusOK, out)
}

// analyze scores an uploaded export. The body is a CSV export, an xlsx
// workbook or {"signals": [...]}, chosen by Content-Type.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	brand, ok := s.brandParam(w, r)
	if !ok {
		return
	}

	signals, err := s.readSignals(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.engine.RunAnalysis(brand, signals)
	if err != nil {
		zap.L().Error("api: analyze failed", zap.String("brand", string(brand)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.writeResult(w, r, res, res)
}

// live runs a live scan for the brand. Search failures degrade to the
// sample set and are reported through the result's source field.
func (s *Server) live(w http.ResponseWriter, r *http.Request) {
	brand, ok := s.brandParam(w, r)
	if !ok {
		return
	}

	scan, err := s.listener.Listen(r.Context(), brand)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	res, err := s.engine.RunLivePulse(brand, scan.Signals)
	if err != nil {
		zap.L().Error("api: live pulse failed", zap.String("brand", string(brand)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "live pulse failed")
		return
	}
	res.Source = scan.Source

	s.writeResult(w, r, &res.AnalysisResult, res)
}

func (s *Server) brandParam(w http.ResponseWriter, r *http.Request) (model.Brand, bool) {
	brand, err := model.ParseBrand(chi.URLParam(r, "brand"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	if _, err := s.engine.Taxonomy().Profile(brand); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return brand, true
}

func (s *Server) readSignals(w http.ResponseWriter, r *http.Request) ([]model.RawSignal, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var req signalsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, errors.New("invalid json body")
		}
		return req.Signals, nil

	case xlsxContentType:
		tbl, err := ingest.ParseXLSX(data)
		if err != nil {
			return nil, errors.New("invalid xlsx body")
		}
		return tbl.Signals(), nil

	default:
		tbl, err := ingest.ReadCSV(r.Context(), bytes.NewReader(data))
		if err != nil {
			return nil, errors.New("invalid csv body")
		}
		return tbl.Signals(), nil
	}
}

// writeResult honours ?format=markdown|html and otherwise writes payload
// as JSON.
func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, res *model.AnalysisResult, payload any) {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "markdown", "md":
		writeDocument(w, "text/markdown; charset=utf-8", s.reporter.Markdown(res))
	case "html":
		page, err := s.reporter.HTML(res)
		if err != nil {
			zap.L().Error("api: render html", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "render failed")
			return
		}
		writeDocument(w, "text/html; charset=utf-8", page)
	default:
		writeJSON(w, http.StatusOK, payload)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDocument(w http.ResponseWriter, contentType, doc string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, doc)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
