package opts

import (
	"golang.org/x/exp/rand"
	"gotest.tools/assert"
	"testing"
)

func Test_Join(t *testing.T) {
	o := Of(&Struct{Size: 3, Seed: 1}, Shuffled(true), &Struct{Size: 5}, Shuffled(false))
	assert.Equal(t, o.Size, 5)
	assert.Equal(t, o.Seed, uint64(1))
	assert.Assert(t, !o.ShuffleOr(true))
	assert.Assert(t, Of(&Struct{Size: 1}).ShuffleOr(true))
	assert.Assert(t, Of(Shuffled(true)).ShuffleOr(false))
}

func Test_Rand(t *testing.T) {
	a := Of(&Struct{Seed: 11}).Rand().Perm(10)
	b := Of(&Struct{Seed: 11}).Rand().Perm(10)
	assert.DeepEqual(t, a, b)
	src := rand.NewSource(11)
	c := Of(&Struct{Seed: 5, Source: src}).Rand().Perm(10)
	assert.DeepEqual(t, a, c)
}

func Test_ZeroSeed(t *testing.T) {
	a := Of(Seeded(0)).Rand().Perm(10)
	b := Of(&Struct{Size: 2}, Seeded(0)).Rand().Perm(10)
	assert.DeepEqual(t, a, b)
	assert.DeepEqual(t, a, rand.New(rand.NewSource(0)).Perm(10))
	o := Of(Seeded(0), &Struct{Size: 2})
	assert.Assert(t, o.seeded)
}

func Test_Notify(t *testing.T) {
	got := ""
	Of().Notify("x", func(s string) { got = s })
	assert.Equal(t, got, "x")
	Of(&Struct{Verbose: func(s string) { got = "hook " + s }}).Notify("y", func(string) { t.Fatal("fallback called") })
	assert.Equal(t, got, "hook y")
	Of().Notify("z", nil)
}
