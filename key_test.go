package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModCombination(t *testing.T) {
	combined := ModShift.And(ModCtrl)
	assert.True(t, combined.Has(ModShift))
	assert.True(t, combined.Has(ModCtrl))
	assert.False(t, combined.Has(ModAlt))
}

func TestKeyMatchesWildcards(t *testing.T) {
	pattern := NewNavKey(nil, nil)
	event := NewNavKey(intPtr(NavUp), modPtr(0))
	assert.True(t, pattern.Matches(event))

	specific := NewNavKey(intPtr(NavUp), nil)
	assert.True(t, specific.Matches(event))

	wrongDir := NewNavKey(intPtr(NavDown), nil)
	assert.False(t, wrongDir.Matches(event))
}

func TestKeyMatchesRequiresSameKind(t *testing.T) {
	nav := NewNavKey(intPtr(NavUp), modPtr(0))
	del := NewDelIns(intPtr(DelInsBackspace), modPtr(0))
	assert.False(t, nav.Matches(del))
}

func TestNewCtrlByteBuildsLetterAndModifier(t *testing.T) {
	k := NewCtrlByte(1) // ctrl-A
	assert.Equal(t, KindCtrl, k.Kind)
	assert.Equal(t, "A", k.Key)
	assert.Equal(t, Mod(1), *k.Mod)
}

func TestNewCtrlAliasesKnownNames(t *testing.T) {
	k := NewCtrl("t") // tab alias
	assert.Equal(t, "I", k.Key)
}

func TestNewMetaFromCtrlRejectsWildcard(t *testing.T) {
	_, err := NewMetaFromCtrl(NewCtrl(""))
	assert.Error(t, err)
}

func TestNewMetaFromCtrlBuildsMetaKey(t *testing.T) {
	ctrl := NewCtrl("A")
	meta, err := NewMetaFromCtrl(ctrl)
	assert.NoError(t, err)
	assert.Equal(t, KindMeta, meta.Kind)
}
