// Package server exposes the minimization routines over HTTP: a REST
// endpoint and a JSON-RPC 2.0 endpoint, both operating on the named
// objective catalog.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/copyleftdev/MNMZ/internal/config"
	"github.com/copyleftdev/MNMZ/internal/errors"
	"github.com/copyleftdev/MNMZ/internal/logging"
	"github.com/copyleftdev/MNMZ/internal/minimize"
	"github.com/copyleftdev/MNMZ/internal/minimize/simplex"
)

// Server handles minimization requests. Requests run synchronously:
// every routine is bounded by its iteration cap, so there is no job
// state to track.
type Server struct {
	cfg    *config.Config
	logger *logging.Logger

	runsTotal  *prometheus.CounterVec
	iterations *prometheus.HistogramVec
}

// NewServer creates a server and registers its metrics with reg.
func NewServer(cfg *config.Config, logger *logging.Logger, reg prometheus.Registerer) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mnmz_runs_total",
			Help: "Minimization runs by algorithm and objective.",
		}, []string{"algorithm", "objective"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mnmz_iterations",
			Help:    "Iterations used per minimization run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		}, []string{"algorithm"}),
	}
	reg.MustRegister(s.runsTotal, s.iterations)
	return s
}

// RegisterRoutes mounts the REST and JSON-RPC endpoints on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/minimize", s.handleMinimize)
		r.Get("/objectives", s.handleObjectives)
	})
	r.Post("/rpc", s.handleJSONRPC)
}

// minimizeRequest is the common request shape for all five routines.
// Lower/Upper parameterize the line searches, Point/Step the simplex
// method.
type minimizeRequest struct {
	Algorithm     string    `json:"algorithm"`
	Objective     string    `json:"objective"`
	Lower         float64   `json:"lower"`
	Upper         float64   `json:"upper"`
	Point         []float64 `json:"point"`
	Step          float64   `json:"step"`
	Tolerance     float64   `json:"tolerance"`
	MaxIterations int       `json:"max_iterations"`
}

type bracketResponse struct {
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	C          float64 `json:"c"`
	FA         float64 `json:"fa"`
	FB         float64 `json:"fb"`
	FC         float64 `json:"fc"`
	Iterations int     `json:"iterations"`
}

type minimizeResponse struct {
	Algorithm  string           `json:"algorithm"`
	Objective  string           `json:"objective"`
	X          []float64        `json:"x,omitempty"`
	F          float64          `json:"f"`
	Iterations int              `json:"iterations"`
	Bracket    *bracketResponse `json:"bracket,omitempty"`
}

// run validates the request, dispatches to the requested routine and
// records metrics.
func (s *Server) run(req minimizeRequest) (*minimizeResponse, error) {
	tol := req.Tolerance
	if tol == 0 {
		tol = s.cfg.Minimize.DefaultTolerance
	}
	maxIter := req.MaxIterations
	if maxIter == 0 {
		maxIter = s.cfg.Minimize.DefaultMaxIterations
	}

	resp := &minimizeResponse{Algorithm: req.Algorithm, Objective: req.Objective}

	switch req.Algorithm {
	case "bracket":
		f, err := s.scalarObjective(req)
		if err != nil {
			return nil, err
		}
		br := minimize.Bracket(f, req.Lower, req.Upper)
		resp.Iterations = br.Iterations
		resp.F = br.FB
		resp.Bracket = &bracketResponse{
			A: br.A, B: br.B, C: br.C,
			FA: br.FA, FB: br.FB, FC: br.FC,
			Iterations: br.Iterations,
		}
	case "golden":
		f, err := s.scalarObjective(req)
		if err != nil {
			return nil, err
		}
		res := minimize.GoldenSection(f, req.Lower, req.Upper, tol, maxIter)
		resp.X, resp.F, resp.Iterations = []float64{res.X}, res.F, res.Iterations
	case "brent":
		f, err := s.scalarObjective(req)
		if err != nil {
			return nil, err
		}
		res := minimize.Brent(f, req.Lower, req.Upper, tol, maxIter)
		resp.X, resp.F, resp.Iterations = []float64{res.X}, res.F, res.Iterations
	case "brentd":
		fd, ok := derivObjectives[req.Objective]
		if !ok {
			return nil, errors.Errorf("objective %q has no registered derivative; choose one of %v",
				req.Objective, objectiveNames(derivObjectives)).WithOperation("brentd")
		}
		if err := validateInterval(req); err != nil {
			return nil, err
		}
		res := minimize.BrentDeriv(fd, req.Lower, req.Upper, tol, maxIter)
		resp.X, resp.F, resp.Iterations = []float64{res.X}, res.F, res.Iterations
	case "amoeba":
		f, ok := vectorObjectives[req.Objective]
		if !ok {
			return nil, errors.Errorf("unknown vector objective %q; choose one of %v",
				req.Objective, objectiveNames(vectorObjectives)).WithOperation("amoeba")
		}
		if len(req.Point) == 0 {
			return nil, errors.New("starting point is required").WithOperation("amoeba")
		}
		if req.Step == 0 {
			return nil, errors.New("a non-zero step is required").WithOperation("amoeba")
		}
		if maxIter <= 0 {
			maxIter = 500
		}
		res := simplex.Amoeba(f, req.Point, req.Step, tol, maxIter)
		resp.X, resp.F, resp.Iterations = res.X, res.F, res.Iterations
	default:
		return nil, errors.Errorf("unknown algorithm %q", req.Algorithm)
	}

	s.runsTotal.WithLabelValues(req.Algorithm, req.Objective).Inc()
	s.iterations.WithLabelValues(req.Algorithm).Observe(float64(resp.Iterations))
	return resp, nil
}

// scalarObjective resolves the named scalar objective and validates
// the interval for the line searches.
func (s *Server) scalarObjective(req minimizeRequest) (minimize.Func, error) {
	f, ok := scalarObjectives[req.Objective]
	if !ok {
		return nil, errors.Errorf("unknown objective %q; choose one of %v",
			req.Objective, objectiveNames(scalarObjectives)).WithOperation(req.Algorithm)
	}
	if err := validateInterval(req); err != nil {
		return nil, err
	}
	return f, nil
}

// validateInterval rejects the degenerate a == b call the core would
// otherwise propagate as NaN.
func validateInterval(req minimizeRequest) error {
	if req.Lower == req.Upper {
		return errors.New("lower and upper abscissas must differ").
			WithOperation(req.Algorithm).WithComponent("server")
	}
	return nil
}

func (s *Server) handleMinimize(w http.ResponseWriter, r *http.Request) {
	var req minimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, errors.Wrap(err, "invalid request body"))
		return
	}

	resp, err := s.run(req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	s.logger.Info("minimization completed", map[string]interface{}{
		"algorithm":  req.Algorithm,
		"objective":  req.Objective,
		"iterations": resp.Iterations,
	})
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleObjectives(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string][]string{
		"scalar":     objectiveNames(scalarObjectives),
		"derivative": objectiveNames(derivObjectives),
		"vector":     objectiveNames(vectorObjectives),
	})
}

// JSON-RPC 2.0 error codes.
const (
	rpcParseError     = -32700
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
)

// handleJSONRPC accepts minimize.golden, minimize.brent,
// minimize.brentd, minimize.amoeba and minimize.bracket calls whose
// single positional parameter is the REST request object without the
// algorithm field.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var request struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      interface{}       `json:"id"`
		Method  string            `json:"method"`
		Params  []json.RawMessage `json:"params,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.respondRPCError(w, rpcParseError, "parse error", nil)
		return
	}
	if request.JSONRPC != "2.0" {
		s.respondRPCError(w, rpcInvalidRequest, "invalid request", request.ID)
		return
	}

	var algorithm string
	switch request.Method {
	case "minimize.golden":
		algorithm = "golden"
	case "minimize.brent":
		algorithm = "brent"
	case "minimize.brentd":
		algorithm = "brentd"
	case "minimize.amoeba":
		algorithm = "amoeba"
	case "minimize.bracket":
		algorithm = "bracket"
	default:
		s.respondRPCError(w, rpcMethodNotFound, "method not found", request.ID)
		return
	}

	var req minimizeRequest
	if len(request.Params) != 1 {
		s.respondRPCError(w, rpcInvalidParams, "expected a single parameter object", request.ID)
		return
	}
	if err := json.Unmarshal(request.Params[0], &req); err != nil {
		s.respondRPCError(w, rpcInvalidParams, err.Error(), request.ID)
		return
	}
	req.Algorithm = algorithm

	resp, err := s.run(req)
	if err != nil {
		s.respondRPCError(w, rpcInvalidParams, err.Error(), request.ID)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      request.ID,
		"result":  resp,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request rejected", map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	})
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) respondRPCError(w http.ResponseWriter, code int, message string, id interface{}) {
	s.logger.Warn("rpc request rejected", map[string]interface{}{
		"code":    code,
		"message": message,
	})
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   map[string]interface{}{"code": code, "message": message},
	})
}
