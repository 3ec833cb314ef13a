package core

import "context"

type OptionKey string

const (
	DrainOptionKey OptionKey = "drain_options"
)

type DrainOptions struct {
	MaxTicks int
}

func WithDrainOptions(ctx context.Context, maxTicks int) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{MaxTicks: maxTicks})
}

func GetDrainMaxTicks(ctx context.Context, defaultMaxTicks int) int {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.MaxTicks
	}
	return defaultMaxTicks
}
