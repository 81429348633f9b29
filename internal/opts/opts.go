// Package opts holds the option struct shared by the mldata packages.
package opts

import (
	"golang.org/x/exp/rand"
	"time"
)

// Option is the common option type shared across mldata packages.
type Option interface {
	mldataOption()
}

// Struct is the combination of all options in struct form.
// Zero values mean "not set".
type Struct struct {
	Size     int          // batch or window size
	Count    int          // batch count
	Stride   int          // window stride
	Seed     uint64       // seed for a fresh source
	Source   rand.Source  // explicit source, wins over Seed
	Shuffle  bool         // shuffle the produced indices
	Verbose  func(string) // receiver of informational notices
	seeded   bool
	shuffled bool
}

func (*Struct) mldataOption() {}

// Join folds srcs into dst, later options override earlier ones.
func (dst *Struct) Join(srcs ...Option) {
	for _, src := range srcs {
		switch src := src.(type) {
		case *Struct:
			if src.Size != 0 {
				dst.Size = src.Size
			}
			if src.Count != 0 {
				dst.Count = src.Count
			}
			if src.Stride != 0 {
				dst.Stride = src.Stride
			}
			if src.seeded || src.Seed != 0 {
				dst.Seed = src.Seed
				dst.seeded = true
			}
			if src.Source != nil {
				dst.Source = src.Source
			}
			if src.shuffled {
				dst.Shuffle = src.Shuffle
				dst.shuffled = true
			}
			if src.Verbose != nil {
				dst.Verbose = src.Verbose
			}
		}
	}
}

// Of returns the joined options.
func Of(srcs ...Option) *Struct {
	s := &Struct{}
	s.Join(srcs...)
	return s
}

// Shuffled builds the option setting the shuffle flag explicitly.
func Shuffled(b bool) *Struct {
	return &Struct{Shuffle: b, shuffled: true}
}

// Seeded builds the option setting the seed explicitly, zero included.
func Seeded(seed uint64) *Struct {
	return &Struct{Seed: seed, seeded: true}
}

// ShuffleOr returns the shuffle flag when it was set explicitly and dflt otherwise.
func (dst *Struct) ShuffleOr(dflt bool) bool {
	if dst.shuffled {
		return dst.Shuffle
	}
	return dflt
}

// Rand returns a generator over the configured source.
// Without Source or Seed a new time-seeded source is created for this call.
// A zero Seed field counts as set only when built with Seeded.
func (dst *Struct) Rand() *rand.Rand {
	src := dst.Source
	if src == nil {
		seed := dst.Seed
		if !dst.seeded && seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = rand.NewSource(seed)
	}
	return rand.New(src)
}

// Notify sends msg to the Verbose hook, or to fallback when no hook is set.
func (dst *Struct) Notify(msg string, fallback func(string)) {
	if dst.Verbose != nil {
		dst.Verbose(msg)
		return
	}
	if fallback != nil {
		fallback(msg)
	}
}
