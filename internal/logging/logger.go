package logging

import (
	"os"
	"strings"

	"github.com/2beens/fitquest/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultSentryServerName = "fitquest"
	// header carrying the client app secret, never sent to sentry
	appTokenHeader = "X-Fitquest-Token"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// Release is the build version reported with sentry events
	Release string
	// Timezone is the reference timezone of the date math, tagged on sentry events
	Timezone string
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

func sentryClientOptions(params LoggerSetupParams) sentry.ClientOptions {
	serverName := params.SentryServerName
	if serverName == "" {
		serverName = defaultSentryServerName
	}
	tracesSampleRate := 1.0
	if isProduction(params.Environment) {
		tracesSampleRate = 0.2
	}

	return sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		Release:          params.Release,
		TracesSampleRate: tracesSampleRate,
		ServerName:       serverName,
		BeforeSend:       scrubAppToken,
	}
}

func scrubAppToken(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request == nil {
		return event
	}
	for name := range event.Request.Headers {
		if strings.EqualFold(name, appTokenHeader) {
			event.Request.Headers[name] = "[scrubbed]"
		}
	}
	return event
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		if err := sentry.Init(sentryClientOptions(params)); err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		}
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("service", defaultSentryServerName)
			if params.Timezone != "" {
				scope.SetTag("timezone", params.Timezone)
			}
		})

		hook := NewSentryHook([]logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		logrus.AddHook(hook)

		logrus.Infoln("Sentry set up successfully")
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return
	}

	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50,    // megabytes
		LocalTime:  false, // false -> use UTC
		Compress:   true,  // disabled by default
		MaxBackups: 30,
		MaxAge:     30, // days
	}

	if params.LogToStdout {
		logrus.SetOutput(
			pkg.NewCombinedWriter(os.Stdout, lumberJackLogger),
		)
	} else {
		logrus.SetOutput(lumberJackLogger)
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
