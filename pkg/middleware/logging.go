package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o id usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

// slowRequestThreshold marca requisições lentas no log
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição com o mesmo id de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(requestFields(r)).Debug("→ requisição iniciada")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("%s %s %d em %s", r.Method, r.URL.Path, lrw.statusCode, formatDuration(elapsed))
			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error(msg)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

// requestFields só inclui cabeçalhos e origem fora de desenvolvimento
func requestFields(r *http.Request) log.Fields {
	fields := log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if log.IsDevelopment() {
		return fields
	}

	fields["remote_addr"] = r.RemoteAddr
	fields["query"] = r.URL.RawQuery
	fields["user_agent"] = r.UserAgent()
	fields["content_length"] = r.ContentLength
	return fields
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em SRV_001 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  err,
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logger.Error("❌ panic na aplicação")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n===================\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("pilha do panic")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
