package get_calendar_feed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	"github.com/m04kA/SMC-CalendarGateway/internal/integrations/slotservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type slotClientStub struct {
	slots  []domain.Slot
	err    error
	calls  int
	tokens []string
}

func (s *slotClientStub) GetSlots(_ context.Context, token string) ([]domain.Slot, error) {
	s.calls++
	s.tokens = append(s.tokens, token)
	return s.slots, s.err
}

func newRequest(token string) *Request {
	return &Request{Session: domain.Session{Token: token, Role: domain.RoleStudent, RawRole: "student"}}
}

func TestExecuteBuildsOneEntryPerDate(t *testing.T) {
	client := &slotClientStub{slots: []domain.Slot{
		{StartTime: "2025-02-23T09:00:00", IsBooked: false},
		{StartTime: "2025-02-23T10:00:00", IsBooked: true},
		{StartTime: "2025-02-24T09:00:00", IsBooked: false},
	}}
	uc := NewUseCase(client, DefaultPalette(), nopLogger{})

	resp, err := uc.Execute(context.Background(), newRequest("tok"))
	require.NoError(t, err)
	require.Equal(t, 3, resp.SlotsCount)
	require.Len(t, resp.Entries, 2)

	assert.Equal(t, "2025-02-23", resp.Entries[0].Date)
	assert.Equal(t, 1, resp.Entries[0].AvailableCount)
	assert.Equal(t, 1, resp.Entries[0].BookedCount)
	assert.Equal(t, "1 Available / 1 Booked", resp.Entries[0].Label)

	assert.Equal(t, "2025-02-24", resp.Entries[1].Date)
	assert.Equal(t, 1, resp.Entries[1].AvailableCount)
	assert.Equal(t, 0, resp.Entries[1].BookedCount)

	require.Equal(t, 1, client.calls)
	require.Equal(t, []string{"tok"}, client.tokens)
}

func TestExecuteCountsSumToSlotCount(t *testing.T) {
	var slots []domain.Slot
	for i := 0; i < 40; i++ {
		slots = append(slots, domain.Slot{
			StartTime: fmt.Sprintf("2025-04-%02dT09:00:00", i%7+1),
			IsBooked:  i%4 == 0,
		})
	}
	uc := NewUseCase(&slotClientStub{slots: slots}, DefaultPalette(), nopLogger{})

	resp, err := uc.Execute(context.Background(), newRequest("tok"))
	require.NoError(t, err)

	sum := 0
	for _, e := range resp.Entries {
		sum += e.AvailableCount + e.BookedCount
	}
	require.Equal(t, len(slots), sum)
}

func TestExecuteEmptySlotsIsNotAFailure(t *testing.T) {
	uc := NewUseCase(&slotClientStub{slots: []domain.Slot{}}, DefaultPalette(), nopLogger{})

	resp, err := uc.Execute(context.Background(), newRequest("tok"))
	require.NoError(t, err)
	require.Empty(t, resp.Entries)
	require.Equal(t, 0, resp.SlotsCount)
}

func TestExecuteStyleDependsOnAvailability(t *testing.T) {
	palette := Palette{
		Available: domain.EntryStyle{BackgroundColor: "free"},
		Booked:    domain.EntryStyle{BackgroundColor: "full"},
	}
	uc := NewUseCase(&slotClientStub{slots: []domain.Slot{
		{StartTime: "2025-02-23T09:00:00", IsBooked: true},
		{StartTime: "2025-02-24T09:00:00", IsBooked: false},
	}}, palette, nopLogger{})

	resp, err := uc.Execute(context.Background(), newRequest("tok"))
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "full", resp.Entries[0].Style.BackgroundColor)
	assert.Equal(t, "free", resp.Entries[1].Style.BackgroundColor)
}

func TestExecuteRequiresToken(t *testing.T) {
	client := &slotClientStub{}
	uc := NewUseCase(client, DefaultPalette(), nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(""))
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, client.calls)

	_, err = uc.Execute(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteBackendErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "transport", err: fmt.Errorf("%w: dial tcp", slotservice.ErrInternal), wantErr: ErrBackendUnavailable},
		{name: "malformed", err: fmt.Errorf("%w: decode", slotservice.ErrInvalidResponse), wantErr: ErrBackendUnavailable},
		{name: "unauthorized", err: fmt.Errorf("%w: 401", slotservice.ErrUnauthorized), wantErr: ErrUnauthorized},
		{name: "unknown", err: errors.New("boom"), wantErr: ErrBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &slotClientStub{err: tt.err}
			uc := NewUseCase(client, DefaultPalette(), nopLogger{})

			resp, err := uc.Execute(context.Background(), newRequest("tok"))
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, resp)
			require.Equal(t, 1, client.calls, "no retries")
		})
	}
}
