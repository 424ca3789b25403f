package command

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassFactoryCreateInstance(t *testing.T) {
	t.Run("hands the caller the only reference", func(t *testing.T) {
		f := NewClassFactory()

		v, err := f.CreateInstance(nil, IIDExplorerCommand)
		require.NoError(t, err)

		c, ok := v.(*Command)
		require.True(t, ok)
		assert.Equal(t, int32(1), c.refs.Load())
		assert.Equal(t, int32(0), c.Release())
	})

	t.Run("rejects aggregation", func(t *testing.T) {
		f := NewClassFactory()

		v, err := f.CreateInstance(struct{}{}, IIDExplorerCommand)
		assert.ErrorIs(t, err, ErrNoAggregation)
		assert.Nil(t, v)
	})

	t.Run("propagates unsupported capability queries", func(t *testing.T) {
		f := NewClassFactory()

		v, err := f.CreateInstance(nil, IIDClassFactory)
		assert.ErrorIs(t, err, ErrNoInterface)
		assert.Nil(t, v)
	})
}

func TestClassFactoryQueryInterface(t *testing.T) {
	f := NewClassFactory()

	v, err := f.QueryInterface(IIDClassFactory)
	require.NoError(t, err)
	assert.Same(t, f, v)
	assert.Equal(t, int32(2), f.refs.Load())

	_, err = f.QueryInterface(IIDExplorerCommand)
	assert.ErrorIs(t, err, ErrNoInterface)
}

func TestClassFactoryLockServer(t *testing.T) {
	f := NewClassFactory()

	// Lock/unlock are accepted no-ops; the ref count is untouched.
	f.LockServer(true)
	f.LockServer(false)
	assert.Equal(t, int32(1), f.refs.Load())
}

func TestGetClassObject(t *testing.T) {
	t.Run("returns a factory for the DiskBench class", func(t *testing.T) {
		v, err := GetClassObject(CLSIDDiskBenchCommand, IIDClassFactory)
		require.NoError(t, err)

		f, ok := v.(*ClassFactory)
		require.True(t, ok)
		assert.Equal(t, int32(1), f.refs.Load())
	})

	t.Run("rejects foreign class ids", func(t *testing.T) {
		v, err := GetClassObject(uuid.New(), IIDClassFactory)
		assert.ErrorIs(t, err, ErrClassNotAvailable)
		assert.Nil(t, v)
	})

	t.Run("rejects unsupported factory capabilities", func(t *testing.T) {
		v, err := GetClassObject(CLSIDDiskBenchCommand, IIDExplorerCommand)
		assert.ErrorIs(t, err, ErrNoInterface)
		assert.Nil(t, v)
	})
}
