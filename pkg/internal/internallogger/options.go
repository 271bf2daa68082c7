package internallogger

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(s *settings) {
		s.level = ConvertLevel(parseLogLevel(levelStr))
	}
}

// LoggerWithDevelopment enables or disables development mode in the logger.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(s *settings) {
		s.development = dev
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(s *settings) {
		if s.initialFields == nil {
			s.initialFields = map[string]interface{}{}
		}
		for key, value := range fields {
			if key == "" {
				continue
			}
			s.initialFields[key] = value
		}
	}
}

// LoggerWithCallerSkip adjusts the number of caller frames to skip.
func LoggerWithCallerSkip(skip int) LoggerOption {
	return func(s *settings) {
		s.callerDepth += skip
	}
}
