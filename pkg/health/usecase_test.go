package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestReady_NoCheckers(t *testing.T) {
	require.NoError(t, NewService().Ready(context.Background()))
}

func TestReady_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("connection refused")
	ok := &stubChecker{name: "ok"}
	bad := &stubChecker{name: "mongodb", err: boom}
	after := &stubChecker{name: "after"}

	err := NewService(ok, bad, after).Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mongodb")
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 0, after.calls)
}
