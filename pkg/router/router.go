package router

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Middleware wraps a handler, e.g. for authentication
type Middleware func(HandlerFunc) HandlerFunc

type route struct {
	method   string
	pattern  string
	segments []string
	handler  HandlerFunc
}

// Router matches routes in registration order. A pattern segment is either
// literal, {name} (captured, see Vars) or * (any segment). A trailing *
// matches any remaining segments.
type Router struct {
	mux        *http.ServeMux
	routes     []route
	middleware []Middleware
}

type varsKey struct{}

func New() *Router {
	r := &Router{mux: http.NewServeMux()}

	// Catch-all handler, every request is dispatched and logged here
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		r.dispatch(lrw, req)

		duration := time.Since(start)
		color := statusColor(lrw.statusCode)
		methodColor := methodColor(req.Method)

		log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
			colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
			methodColor, req.Method, colorReset,
			req.URL.Path,
			color, lrw.statusCode, colorReset,
			colorBlue, duration, colorReset,
		)
	})

	return r
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	pathMatched := false
	for _, rt := range r.routes {
		vars, ok := matchRoute(req.URL.Path, rt.segments)
		if !ok {
			continue
		}
		pathMatched = true
		if rt.method != req.Method {
			continue
		}
		if len(vars) > 0 {
			req = req.WithContext(context.WithValue(req.Context(), varsKey{}, vars))
		}
		r.wrap(rt.handler)(w, req)
		return
	}

	if pathMatched {
		// Path exists but method not allowed
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (r *Router) wrap(h HandlerFunc) HandlerFunc {
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	return h
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "/")
}

// matchRoute checks if a request path matches the route segments and
// returns the captured variables
func matchRoute(requestPath string, routeSegments []string) (map[string]string, bool) {
	requestSegments := splitPath(requestPath)
	var vars map[string]string

	n := len(routeSegments)
	trailing := n > 0 && routeSegments[n-1] == "*"
	if trailing {
		// Must have at least as many segments as the route (excluding the wildcard)
		if len(requestSegments) < n-1 {
			return nil, false
		}
		n--
	} else if len(requestSegments) != n {
		return nil, false
	}

	for i := 0; i < n; i++ {
		seg := routeSegments[i]
		switch {
		case seg == "*":
			// Wildcard matches any segment
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			if requestSegments[i] == "" {
				return nil, false
			}
			if vars == nil {
				vars = make(map[string]string)
			}
			vars[seg[1:len(seg)-1]] = requestSegments[i]
		case requestSegments[i] != seg:
			return nil, false
		}
	}
	return vars, true
}

// Vars returns the path variables captured for the request
func Vars(req *http.Request) map[string]string {
	vars, _ := req.Context().Value(varsKey{}).(map[string]string)
	if vars == nil {
		return map[string]string{}
	}
	return vars
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes = append(r.routes, route{
		method:   method,
		pattern:  path,
		segments: splitPath(path),
		handler:  handler,
	})
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Use appends middleware applied to every route
func (r *Router) Use(m ...Middleware) {
	r.middleware = append(r.middleware, m...)
}

// Routes lists the registered routes as METHOD:PATH, in matching order
func (r *Router) Routes() []string {
	out := make([]string, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, rt.method+":"+rt.pattern)
	}
	return out
}

// Handler exposes the router as an http.Handler, for tests and embedding
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---
func (r *Router) Start(addr string) error {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	return http.ListenAndServe(addr, r.mux)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut:
		return colorYellow
	case http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
