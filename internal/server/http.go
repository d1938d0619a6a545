package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxDepositFileSize bounds the body of a pack request
const maxDepositFileSize = 16 << 20

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/pack", s.handlePack).Methods(http.MethodPost)
	r.HandleFunc("/v1/current", s.handleCurrent).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return r
}

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDepositFileSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
		} else {
			writeError(w, http.StatusBadRequest, err)
		}
		return
	}
	res, err := s.load(r.Context(), r.URL.Query().Get("name"), data)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	resp, err := NewPackResponse(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	res, ok := s.loader.Current()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no deposit file loaded"})
		return
	}
	resp, err := NewPackResponse(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func httpStatus(err error) int {
	switch status.Code(grpcError(err)) {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Aborted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(obj)
}
