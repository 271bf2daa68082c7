package kafkaclient

import "github.com/neuroline/eegstream/pkg/internal/types"

// ConnectLogger attaches loggers for transport diagnostics.
func (c *KafkaClient) ConnectLogger(loggers ...types.Logger) {
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

	c.loggersLock.Lock()
	c.loggers = append(c.loggers, loggers[:n]...)
	c.loggersLock.Unlock()
}

// ConnectMonitor attaches monitors that observe flushes and transport faults.
func (c *KafkaClient) ConnectMonitor(monitors ...types.Monitor) {
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

	c.monitorLock.Lock()
	c.monitors = append(c.monitors, monitors[:n]...)
	c.monitorLock.Unlock()
}

func (c *KafkaClient) notifyMonitors(fn func(types.Monitor)) {
	c.monitorLock.Lock()
	local := make([]types.Monitor, len(c.monitors))
	copy(local, c.monitors)
	c.monitorLock.Unlock()

	for _, m := range local {
		if m != nil {
			fn(m)
		}
	}
}

// NotifyLoggers fans a log entry out to every attached logger at or below level.
func (c *KafkaClient) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()

	for _, logger := range c.loggers {
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
