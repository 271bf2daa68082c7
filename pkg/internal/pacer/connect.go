package pacer

import "github.com/neuroline/eegstream/pkg/internal/types"

// ConnectLogger attaches loggers for pacing diagnostics.
func (p *Pacer) ConnectLogger(loggers ...types.Logger) {
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

	p.loggersLock.Lock()
	p.loggers = append(p.loggers, loggers[:n]...)
	p.loggersLock.Unlock()
}

// ConnectMonitor attaches monitors to observe drift corrections.
func (p *Pacer) ConnectMonitor(monitors ...types.Monitor) {
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

	p.monitorLock.Lock()
	p.monitors = append(p.monitors, monitors[:n]...)
	p.monitorLock.Unlock()
}

func (p *Pacer) notifyMonitors(fn func(types.Monitor)) {
	p.monitorLock.Lock()
	local := make([]types.Monitor, len(p.monitors))
	copy(local, p.monitors)
	p.monitorLock.Unlock()

	for _, m := range local {
		if m != nil {
			fn(m)
		}
	}
}

// NotifyLoggers fans a log entry out to every attached logger at or below level.
func (p *Pacer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	p.loggersLock.Lock()
	defer p.loggersLock.Unlock()

	for _, logger := range p.loggers {
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
