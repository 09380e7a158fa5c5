package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla formato y nivel de salida del logger.
type Config struct {
	Env   string // "development" escribe consola coloreada; el resto, JSON por línea
	Level string // trace | debug | info | warn | error (info si no se reconoce)
}

// Logger envuelve zerolog para inyectarlo como dependencia en lugar de
// depender del logger global del paquete.
type Logger struct {
	zl zerolog.Logger
}

var levels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// New construye el logger de la aplicación. Fuera de development la salida es
// JSON estructurado, listo para un recolector de logs.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()

	// Las librerías que escriben por el global de zerolog salen por aquí también.
	log.Logger = zl

	return &Logger{zl: zl}
}

// Eventos por nivel, delegados directamente a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para fijar campos en un sublogger.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger subyacente cuando hace falta la API completa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
