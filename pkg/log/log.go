package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger expõe apenas os níveis usados pela API; Fatal fica restrito ao main via logrus
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	tenantKey        contextKey = "tenant"
)

const (
	correlationIDField   = "correlation_id"
	establishmentIDField = "establishment_id"
	userRoleField        = "user_role"
)

// tenant identifica quem fez a requisição autenticada
type tenant struct {
	establishmentID string
	role            string
}

type logger struct {
	entry *logrus.Entry
}

// L é uma instância global de Logger para uso direto
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// devFields são os campos mantidos em desenvolvimento
var devFields = map[string]bool{
	correlationIDField:   true,
	establishmentIDField: true,
	"method":             true,
	"path":               true,
	"status_code":        true,
	"duration_ms":        true,
	"error":              true,
	"facet":              true,
	"report":             true,
	"job":                true,
}

func keepInDevelopment(key string) bool {
	return devFields[key] || strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value any) Logger {
	if IsDevelopment() && !keepInDevelopment(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if !IsDevelopment() || keepInDevelopment(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext carrega o id de correlação e, depois da autenticação, o estabelecimento e o papel do usuário
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := Fields{}
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		fields[correlationIDField] = correlationID
	}
	if t, ok := ctx.Value(tenantKey).(tenant); ok {
		if t.establishmentID != "" {
			fields[establishmentIDField] = t.establishmentID
		}
		if t.role != "" {
			fields[userRoleField] = t.role
		}
	}

	return l.WithFields(fields)
}

func (l *logger) Debug(args ...any) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...any) {
	l.entry.Info(args...)
}

func (l *logger) Warn(args ...any) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...any) {
	l.entry.Error(args...)
}

// WithCorrelationID gera um id de correlação para a requisição
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithTenant grava estabelecimento e papel para que todo log da requisição os inclua
func WithTenant(ctx context.Context, establishmentID, role string) context.Context {
	return context.WithValue(ctx, tenantKey, tenant{establishmentID: establishmentID, role: role})
}

// ForContext cria um logger com os campos da requisição
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
