package logger

type LoggerInterface interface {
	Debugw(string, ...any)
	Infow(string, ...any)
	Warnw(string, ...any)
	Errorw(string, ...any)

	With(...any) LoggerInterface
	SafeSync()
}
