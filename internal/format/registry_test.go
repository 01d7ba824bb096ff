package format

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

func TestRegistry_Empty(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.All())
	assert.Empty(t, reg.Names())
	assert.Empty(t, reg.Lookup("ddi", ""))
	assert.Equal(t, "Formats (0):", reg.String())
}

func TestRegistry_LookupScenario(t *testing.T) {
	reg := NewRegistry()
	ddi := MustNew("DDI", "2.5", WithType(TypeXML))
	require.NoError(t, reg.Add(ddi))

	got := reg.Lookup("DDI", "")
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(ddi))

	assert.Empty(t, reg.Lookup("DDI", "3.0"))
	assert.NotNil(t, reg.Lookup("DDI", "3.0"))
}

func TestRegistry_NewestFirst(t *testing.T) {
	reg := NewRegistry()
	v1 := MustNew("ddi", "1.0")
	v2 := MustNew("ddi", "2.0")
	v3 := MustNew("ddi", "3.0")

	for _, d := range []*Descriptor{v1, v2, v3} {
		require.NoError(t, reg.Add(d))
		assert.Same(t, d, reg.Lookup("ddi", "")[0], "most recent add must come first")
	}

	got := reg.Lookup("ddi", "")
	require.Len(t, got, 3)
	assert.Same(t, v3, got[0])
	assert.Same(t, v2, got[1])
	assert.Same(t, v1, got[2])
}

func TestRegistry_Replace(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(MustNew("ddi", "1.0")))
	require.NoError(t, reg.Add(MustNew("ddi", "2.0")))

	d := MustNew("ddi", "3.0")
	require.NoError(t, reg.Replace(d))

	got := reg.Lookup("ddi", "")
	require.Len(t, got, 1)
	assert.Same(t, d, got[0])
	assert.Equal(t, 1, reg.Count())

	fresh := MustNew("dcat", "1")
	require.NoError(t, reg.Replace(fresh))
	assert.Equal(t, []string{"ddi", "dcat"}, reg.Names())
}

func TestRegistry_LookupVersion(t *testing.T) {
	reg := NewRegistry()
	older := MustNew("ddi", "2.5", WithDescription("older"))
	newer := MustNew("ddi", "2.5", WithDescription("newer"))
	require.NoError(t, reg.Add(older))
	require.NoError(t, reg.Add(MustNew("ddi", "3.0")))
	require.NoError(t, reg.Add(newer))

	got := reg.Lookup("ddi", "2.5")
	require.Len(t, got, 1)
	assert.Same(t, newer, got[0])
	assert.Equal(t, "2.5", got[0].Version())

	// Version match is case-sensitive.
	reg2 := NewRegistry()
	require.NoError(t, reg2.Add(MustNew("iso", "RC1")))
	assert.Empty(t, reg2.Lookup("iso", "rc1"))
	assert.Len(t, reg2.Lookup("iso", "RC1"), 1)
}

func TestRegistry_LookupNameIsExact(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(MustNew("DDI", "2.5")))
	assert.Empty(t, reg.Lookup("ddi", ""))
}

func TestRegistry_DuplicatesAllowed(t *testing.T) {
	reg := NewRegistry()
	d := MustNew("ddi", "2.5")
	require.NoError(t, reg.Add(d))
	require.NoError(t, reg.Add(d))
	assert.Equal(t, 2, reg.Count())
	assert.Len(t, reg.Lookup("ddi", ""), 2)
	assert.Equal(t, []string{"ddi"}, reg.Names())
}

func TestRegistry_AllOrder(t *testing.T) {
	reg := NewRegistry()
	a1 := MustNew("a", "1")
	b1 := MustNew("b", "1")
	a2 := MustNew("a", "2")
	require.NoError(t, reg.Add(a1))
	require.NoError(t, reg.Add(b1))
	require.NoError(t, reg.Add(a2))

	all := reg.All()
	require.Len(t, all, 3)
	assert.Same(t, a2, all[0])
	assert.Same(t, a1, all[1])
	assert.Same(t, b1, all[2])
	assert.Equal(t, 3, reg.Count())
	assert.Equal(t, "Formats (3): a[2, 1] b[1]", reg.String())
}

func TestRegistry_AddNil(t *testing.T) {
	reg := NewRegistry()
	err := reg.Add(nil)
	assert.True(t, errors.Is(err, mdconv.ErrInvalidDescriptor))
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Names())
}

func TestRegistry_LookupResultIsStable(t *testing.T) {
	reg := NewRegistry()
	v1 := MustNew("ddi", "1")
	require.NoError(t, reg.Add(v1))

	snapshot := reg.Lookup("ddi", "")
	require.NoError(t, reg.Add(MustNew("ddi", "2")))
	require.NoError(t, reg.Replace(MustNew("ddi", "3")))

	require.Len(t, snapshot, 1)
	assert.Same(t, v1, snapshot[0])

	snapshot[0] = nil
	assert.NotNil(t, reg.Lookup("ddi", "")[0])
}

func TestRegistry_Latest(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(MustNew("ddi", "1")))
	require.NoError(t, reg.Add(MustNew("ddi", "2")))

	d, err := reg.Latest("ddi", "")
	require.NoError(t, err)
	assert.Equal(t, "2", d.Version())

	d, err = reg.Latest("ddi", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", d.Version())

	_, err = reg.Latest("ddi", "9")
	assert.True(t, errors.Is(err, mdconv.ErrFormatNotFound))
	_, err = reg.Latest("nope", "")
	assert.True(t, errors.Is(err, mdconv.ErrFormatNotFound))
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	reg := NewRegistry()

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				name := fmt.Sprintf("fmt-%d", i%5)
				_ = reg.Add(MustNew(name, fmt.Sprintf("%d.%d", w, i)))
				_ = reg.Lookup(name, "")
				_ = reg.All()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, reg.Count())
	assert.Len(t, reg.All(), writers*perWriter)
	assert.Len(t, reg.Names(), 5)
}
