package logger

import "go.uber.org/zap"

// New builds the application logger: human readable in development,
// JSON everywhere else.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
