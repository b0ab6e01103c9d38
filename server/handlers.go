package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/yokitheyo/cut/cut"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/cut", h.cutLines).Methods("POST")
	r.HandleFunc("/parse", h.parse).Methods("GET")
	r.HandleFunc("/health", h.health).Methods("GET")
}

type cutRequest struct {
	Mode          string   `json:"mode"`
	List          string   `json:"list"`
	Delimiter     string   `json:"delimiter"`
	OnlyDelimited bool     `json:"only_delimited"`
	Lines         []string `json:"lines"`
}

type response struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (h *Handler) cutLines(w http.ResponseWriter, r *http.Request) {
	var req cutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	request, err := toRequest(req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	extractor, err := request.Extractor()
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		if request.OnlyDelimited && !extractor.Delimited(line) {
			continue
		}
		result = append(result, extractor.Extract(line))
	}

	writeJSON(w, response{Result: result}, http.StatusOK)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	positions, err := cut.ParseSelection(r.URL.Query().Get("list"))
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, response{Result: positions}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, response{Result: "ok"}, http.StatusOK)
}

func toRequest(req cutRequest) (cut.Request, error) {
	mode := req.Mode
	if mode == "" {
		mode = "fields"
	}
	kind, err := cut.ParseModeKind(mode)
	if err != nil {
		return cut.Request{}, err
	}

	delim := cut.DefaultDelimiter
	switch len(req.Delimiter) {
	case 0:
	case 1:
		delim = req.Delimiter[0]
	default:
		return cut.Request{}, errors.New("delimiter must be a single byte")
	}

	return cut.Request{
		Kind:          kind,
		Delimiter:     delim,
		List:          req.List,
		OnlyDelimited: req.OnlyDelimited,
	}, nil
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, errorMsg string, statusCode int) {
	writeJSON(w, response{Error: errorMsg}, statusCode)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}
