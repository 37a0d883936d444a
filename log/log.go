package log

import "go.uber.org/zap"

// Production silences the global loggers. On-target builds have no console
// until platform bring-up has run, so early logging has nowhere to go.
func Production(_ ...zap.Option) *zap.Logger {
	l := zap.NewNop()
	zap.ReplaceGlobals(l)

	return l
}

func Development(opts ...zap.Option) *zap.Logger {
	opts = append(opts, zap.WithCaller(true))
	l, err := zap.NewDevelopment(
		opts...,
	)

	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(l)

	return zap.L()
}
