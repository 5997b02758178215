package core

const ContextTraceKey = "telemetry_trace_ctx"

type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"
)

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
}

type TraceAuthMeta struct {
	Where    string `trace:"auth.token_source"`
	ClientIP string `trace:"client.address"`
	UserID   int64  `trace:"auth.user_id"`
	Email    string `trace:"auth.email"`
	Status   string `trace:"auth.status"`
}

type TraceFetchMeta struct {
	Limit      int    `trace:"langfuse.limit"`
	HttpStatus int    `trace:"http.response.status_code"`
	Count      int    `trace:"langfuse.count"`
	Status     string `trace:"langfuse.status"`
}

type TracePanicMeta struct {
	Path       string  `trace:"url.path"`
	Method     string  `trace:"http.request.method"`
	ClientIP   string  `trace:"client.address"`
	UserAgent  string  `trace:"user_agent.original"`
	DurationMs float64 `trace:"duration_ms"`
	Message    string  `trace:"panic.message"`
	Stack      string  `trace:"panic.stack"`
	Status     int     `trace:"http.response.status_code"`
}
