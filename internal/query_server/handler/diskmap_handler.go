package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
	"github.com/Avi18971911/diagviewer/internal/query_server/service/diskmap"
	"github.com/Avi18971911/diagviewer/internal/render"
	"go.uber.org/zap"
)

// BoardHandler creates a handler serving the disk map as an HTML page.
// @Summary Get the disk usage board of the loaded bundle.
// @Tags diskmap
// @Produce html
// @Param width query number false "Canvas width in pixels"
// @Param height query number false "Canvas height in pixels"
// @Param padding query number false "Padding between sibling rectangles"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} ErrorMessage "Invalid layout parameters"
// @Router / [get]
func BoardHandler(
	s diskmap.DiskMapQueryService,
	logger *zap.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Info(
			"Received Board Handler",
			zap.String("URL Path", r.URL.Path),
			zap.String("Method", r.Method),
		)
		result, ok := layoutFor(w, r, s, logger)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := render.HTML(&buf, s.Cluster(), result); err != nil {
			logger.Error("Error encountered when rendering board", zap.Error(err))
			HttpError(w, "Internal server error", http.StatusInternalServerError, logger)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.Error("Error encountered when writing board", zap.Error(err))
		}
	}
}

// LayoutHandler creates a handler returning the ordered leaf rectangles.
// @Summary Get the computed layout of the loaded bundle.
// @Tags diskmap
// @Produce json
// @Param width query number false "Canvas width in pixels"
// @Param height query number false "Canvas height in pixels"
// @Param padding query number false "Padding between sibling rectangles"
// @Success 200 {object} layout.Result "Groups and leaves of the layout"
// @Failure 400 {object} ErrorMessage "Invalid layout parameters"
// @Router /layout [get]
func LayoutHandler(
	s diskmap.DiskMapQueryService,
	logger *zap.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Info(
			"Received Layout Handler",
			zap.String("URL Path", r.URL.Path),
			zap.String("Method", r.Method),
		)
		result, ok := layoutFor(w, r, s, logger)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := render.JSON(&buf, result); err != nil {
			logger.Error("Error encountered when encoding layout", zap.Error(err))
			HttpError(w, "Internal server error", http.StatusInternalServerError, logger)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := buf.WriteTo(w); err != nil {
			logger.Error("Error encountered when writing layout", zap.Error(err))
		}
	}
}

// SummaryHandler creates a handler returning per node disk usage.
// @Summary Get per node disk usage of the loaded bundle.
// @Tags diskmap
// @Produce json
// @Success 200 {object} SummaryResponseDTO "Node totals and rectangles"
// @Failure 400 {object} ErrorMessage "Invalid layout parameters"
// @Router /summary [get]
func SummaryHandler(
	s diskmap.DiskMapQueryService,
	logger *zap.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Info(
			"Received Summary Handler",
			zap.String("URL Path", r.URL.Path),
			zap.String("Method", r.Method),
		)
		result, ok := layoutFor(w, r, s, logger)
		if !ok {
			return
		}
		cluster := s.Cluster()
		resDTO := SummaryResponseDTO{
			ClusterName: cluster.Name,
			Nodes:       render.Summarize(cluster),
			Groups:      result.Groups,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resDTO); err != nil {
			logger.Error("Error encountered when encoding response", zap.Error(err))
			HttpError(w, "Internal server error", http.StatusInternalServerError, logger)
			return
		}
	}
}

func layoutFor(
	w http.ResponseWriter,
	r *http.Request,
	s diskmap.DiskMapQueryService,
	logger *zap.Logger,
) (*layout.Result, bool) {
	opts, err := parseLayoutOptions(r, s.Defaults())
	if err != nil {
		logger.Error("Error encountered when validating request", zap.Error(err))
		HttpError(w, err.Error(), http.StatusBadRequest, logger)
		return nil, false
	}
	result, err := s.Layout(opts)
	if err != nil {
		logger.Error("Error encountered when computing layout", zap.Error(err))
		HttpError(w, "Internal server error", http.StatusInternalServerError, logger)
		return nil, false
	}
	return result, true
}
