package bridge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/adapters/telemetry"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports/mocks"
	"go.trai.ch/nodal/internal/engine/bridge"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockManagedDomain, *mocks.MockNativeDomain, *mocks.MockConverter, *bridge.Bridge) {
	t.Helper()
	ctrl := gomock.NewController(t)
	managed := mocks.NewMockManagedDomain(ctrl)
	native := mocks.NewMockNativeDomain(ctrl)
	conv := mocks.NewMockConverter(ctrl)
	return managed, native, conv, bridge.New(managed, native, conv, telemetry.NewNoOpTracer())
}

func TestBridge_PullFromNative(t *testing.T) {
	managed, native, conv, b := setup(t)
	ref := domain.NewOutputRef("sum", "out")

	gomock.InOrder(
		native.EXPECT().GetObject(ref).Return([]byte("5"), nil),
		conv.EXPECT().ToManaged(ref, []byte("5")).Return(float64(5), nil),
		managed.EXPECT().SetObject(ref, float64(5)).Return(nil),
	)

	require.NoError(t, b.PullFromNative(context.Background(), ref))
}

func TestBridge_PushToNative(t *testing.T) {
	managed, native, conv, b := setup(t)
	ref := domain.NewOutputRef("seed", "out")

	gomock.InOrder(
		managed.EXPECT().GetObject(ref).Return(float64(2), nil),
		conv.EXPECT().ToNative(ref, float64(2)).Return([]byte("2"), nil),
		native.EXPECT().SetObject(ref, []byte("2")).Return(nil),
	)

	require.NoError(t, b.PushToNative(context.Background(), ref))
}

func TestBridge_MissingObject(t *testing.T) {
	_, native, _, b := setup(t)
	ref := domain.NewOutputRef("sum", "out")
	missing := errors.New("no such object")

	native.EXPECT().GetObject(ref).Return(nil, missing)

	err := b.PullFromNative(context.Background(), ref)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBridgeFailure))
	assert.True(t, errors.Is(err, missing))
	assert.Contains(t, err.Error(), "failed to read object")
}

func TestBridge_ConversionFailureStoresNothing(t *testing.T) {
	managed, _, conv, b := setup(t)
	ref := domain.NewOutputRef("seed", "out")

	managed.EXPECT().GetObject(ref).Return(make(chan int), nil)
	conv.EXPECT().ToNative(ref, gomock.Any()).Return(nil, errors.New("unsupported"))

	err := b.PushToNative(context.Background(), ref)
	assert.True(t, errors.Is(err, domain.ErrBridgeFailure))
}
