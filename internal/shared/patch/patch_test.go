package patch_test

import (
	"testing"
	"time"

	"github.com/HikaruIzuno/dailyreport-system/internal/shared/patch"
	"github.com/stretchr/testify/assert"
)

func TestApply_NoChanges(t *testing.T) {
	name := "Taro Yamada"
	role := "GENERAL"

	changed := patch.Apply(
		patch.Field(&name, "Taro Yamada"),
		patch.Field(&role, "GENERAL"),
	)

	assert.False(t, changed)
	assert.Equal(t, "Taro Yamada", name)
	assert.Equal(t, "GENERAL", role)
}

func TestApply_SomeChanges(t *testing.T) {
	name := "Taro Yamada"
	role := "GENERAL"

	changed := patch.Apply(
		patch.Field(&name, "Taro Yamada"),
		patch.Field(&role, "ADMIN"),
	)

	assert.True(t, changed)
	assert.Equal(t, "Taro Yamada", name)
	assert.Equal(t, "ADMIN", role)
}

func TestApply_AllChangesApplied(t *testing.T) {
	// No short-circuit: later fields are applied even after a change.
	a, b := "one", "two"

	changed := patch.Apply(
		patch.Field(&a, "uno"),
		patch.Field(&b, "dos"),
	)

	assert.True(t, changed)
	assert.Equal(t, "uno", a)
	assert.Equal(t, "dos", b)
}

func TestTime_SameInstantDifferentLocation(t *testing.T) {
	utc := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	stored := utc
	incoming := utc.In(time.FixedZone("JST", 9*60*60))

	changed := patch.Apply(patch.Time(&stored, incoming))

	assert.False(t, changed)
	assert.True(t, stored.Equal(utc))
}

func TestTime_Changed(t *testing.T) {
	stored := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	incoming := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	changed := patch.Apply(patch.Time(&stored, incoming))

	assert.True(t, changed)
	assert.Equal(t, incoming, stored)
}
