package server

import (
	"bufio"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/funkdigen/pkg/digraph6"
	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/generate"
	"github.com/matzehuels/funkdigen/pkg/graph"
)

var errNotFound = errors.New(errors.ErrCodeInvalidInput, "no such route")

// flushEvery is the number of lines written between flushes of a stream.
const flushEvery = 256

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// request holds the parsed parameters shared by the generation routes.
type request struct {
	size     int
	opts     generate.Options
	internal bool
	loopless bool
	format   string
}

func (s *Server) parseRequest(r *http.Request) (request, error) {
	req := request{loopless: s.opts.Loopless, format: "text"}

	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil || size < 0 {
		return req, errors.New(errors.ErrCodeInvalidSize, "size must be a nonnegative integer, got %q", chi.URLParam(r, "size"))
	}
	if size > s.opts.MaxSize {
		return req, errors.New(errors.ErrCodeInvalidSize, "size %d exceeds the limit of %d", size, s.opts.MaxSize)
	}
	req.size = size

	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"connected": &req.opts.Connected,
		"internal":  &req.internal,
		"loopless":  &req.loopless,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
		}
		*dst = b
	}

	strategy := s.opts.Strategy
	if v := q.Get("strategy"); v != "" {
		strategy = generate.Strategy(v)
	}
	if req.opts.Strategy, err = generate.ParseStrategy(string(strategy)); err != nil {
		return req, err
	}

	if v := q.Get("format"); v != "" {
		if v != "text" && v != "json" {
			return req, errors.New(errors.ErrCodeInvalidFormat, "format must be text or json, got %q", v)
		}
		req.format = v
	}
	return req, nil
}

// handleDigraphs streams one line per digraph: digraph6 or the textual code
// for format=text, a JSON digraph for format=json.
func (s *Server) handleDigraphs(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ctx := r.Context()
	seq, err := generate.Digraphs(ctx, req.size, req.opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.format == "json" {
		w.Header().Set("Content-Type", "application/x-ndjson")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	var line []byte
	n := 0
	for c := range seq {
		if ctx.Err() != nil {
			return
		}
		switch {
		case req.format == "json":
			err = enc.Encode(graph.Render(c))
		case req.internal:
			_, err = bw.WriteString(c.String() + "\n")
		default:
			line = append(digraph6.Append(line[:0], graph.Render(c), req.loopless), '\n')
			_, err = bw.Write(line)
		}
		if err != nil {
			s.logger.Debug("stream aborted", "err", err, "id", RequestIDFromContext(ctx))
			return
		}
		if n++; n%flushEvery == 0 {
			if bw.Flush() != nil {
				return
			}
			_ = rc.Flush()
		}
	}
	_ = bw.Flush()
}

type countKey struct {
	size      int
	connected bool
	strategy  generate.Strategy
}

type countResult struct {
	count   uint64
	elapsed time.Duration
}

// CountResponse is the body of GET /count/{size}.
type CountResponse struct {
	Size      int    `json:"size"`
	Connected bool   `json:"connected"`
	Strategy  string `json:"strategy"`
	Count     uint64 `json:"count"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Cached    bool   `json:"cached"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	key := countKey{size: req.size, connected: req.opts.Connected, strategy: req.opts.Strategy}
	res, cached := s.counts.Get(key)
	if !cached {
		start := time.Now()
		count, err := generate.Count(r.Context(), req.size, req.opts)
		if err != nil {
			if r.Context().Err() != nil {
				s.logger.Debug("count abandoned", "size", req.size, "id", RequestIDFromContext(r.Context()))
				return
			}
			writeError(w, http.StatusBadRequest, err)
			return
		}
		res = countResult{count: count, elapsed: time.Since(start)}
		s.counts.Add(key, res)
	}
	writeJSON(w, http.StatusOK, CountResponse{
		Size:      req.size,
		Connected: req.opts.Connected,
		Strategy:  string(req.opts.Strategy),
		Count:     res.count,
		ElapsedMS: res.elapsed.Milliseconds(),
		Cached:    cached,
	})
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: string(code), Message: errors.UserMessage(err)}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
