package streamer

import "github.com/neuroline/eegstream/pkg/internal/types"

// ConnectLogger attaches loggers for stream loop diagnostics.
func (s *EEGStreamer) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}

	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers[:n]...)
	s.loggersLock.Unlock()
}

// ConnectMonitor attaches monitors that observe the session lifecycle.
func (s *EEGStreamer) ConnectMonitor(monitors ...types.Monitor) {
	if len(monitors) == 0 {
		return
	}

	n := 0
	for _, m := range monitors {
		if m != nil {
			monitors[n] = m
			n++
		}
	}
	if n == 0 {
		return
	}

	s.monitorLock.Lock()
	s.monitors = append(s.monitors, monitors[:n]...)
	s.monitorLock.Unlock()
}

func (s *EEGStreamer) notifyMonitors(fn func(types.Monitor)) {
	s.monitorLock.Lock()
	local := make([]types.Monitor, len(s.monitors))
	copy(local, s.monitors)
	s.monitorLock.Unlock()

	for _, m := range local {
		if m != nil {
			fn(m)
		}
	}
}

// NotifyLoggers fans a log entry out to every attached logger at or below level.
func (s *EEGStreamer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()

	for _, logger := range s.loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
