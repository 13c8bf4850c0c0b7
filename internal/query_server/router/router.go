package router

import (
	"net/http"

	"github.com/Avi18971911/diagviewer/internal/query_server/handler"
	"github.com/Avi18971911/diagviewer/internal/query_server/service/diskmap"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func CreateRouter(
	diskMapQueryService diskmap.DiskMapQueryService,
	logger *zap.Logger,
) http.Handler {
	r := mux.NewRouter()

	r.Handle(
		"/", handler.BoardHandler(
			diskMapQueryService,
			logger,
		),
	).Methods("GET")

	r.Handle(
		"/layout", handler.LayoutHandler(
			diskMapQueryService,
			logger,
		),
	).Methods("GET")

	r.Handle(
		"/summary", handler.SummaryHandler(
			diskMapQueryService,
			logger,
		),
	).Methods("GET")

	return r
}
