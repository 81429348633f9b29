package data

import (
	"go-ml.dev/pkg/mldata/internal/opts"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/exp/rand"
)

// Option configures views, partitions and resampling.
// Each function takes a variadic list of options, later options override earlier ones.
type Option = opts.Option

// BatchSize sets the number of observations per batch.
func BatchSize(n int) Option {
	return &opts.Struct{Size: n}
}

// BatchCount sets the number of batches.
func BatchCount(n int) Option {
	return &opts.Struct{Count: n}
}

// Stride sets the offset between consecutive sliding windows.
func Stride(n int) Option {
	return &opts.Struct{Stride: n}
}

// Seed makes random operations reproducible; Seed(0) is a valid seed too.
func Seed(seed uint64) Option {
	return opts.Seeded(seed)
}

// Source sets the source of randomness; it wins over Seed.
func Source(src rand.Source) Option {
	return &opts.Struct{Source: src}
}

// Shuffled sets whether output indices are randomly ordered.
// Stratified splits and resampling shuffle unless Shuffled(false) is given.
func Shuffled(b bool) Option {
	return opts.Shuffled(b)
}

// Verbose receives informational notices instead of the zlog logger.
func Verbose(fn func(string)) Option {
	return &opts.Struct{Verbose: fn}
}

func notice(o *opts.Struct, msg string) {
	o.Notify(msg, func(s string) { zlog.Info(s) })
}
