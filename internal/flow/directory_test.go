package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
	"github.com/beepkz/BEEP-BookingService/pkg/ptr"
)

func mastersFixture() []apiclient.Master {
	return []apiclient.Master{
		{ID: 1, Name: "Алексей Петров", Email: "petrov@beep.kz", Specialization: "Двигатель", Address: ptr.Ptr("Алматы, Абая 10")},
		{ID: 2, Name: "Мария Ким", Email: "kim@beep.kz", Specialization: "Электрика", IsFavorite: true},
		{ID: 3, Name: "Ержан Садыков", Email: "sadykov@beep.kz", Specialization: "Ходовая часть", Address: ptr.Ptr("Астана, Сарыарка 5")},
	}
}

func sessionWithMasters(t *testing.T, client *fakeClient) *Session {
	t.Helper()
	client.masters = mastersFixture()
	session, _, _ := newTestSession(client)
	require.NoError(t, session.LoadMasters(context.Background()))
	return session
}

func TestSearch_MatchesNameSpecializationAddress(t *testing.T) {
	session := sessionWithMasters(t, &fakeClient{})

	assert.Len(t, session.Search("петров"), 1)
	assert.Len(t, session.Search("Электрика"), 1)
	assert.Len(t, session.Search("алматы"), 1)
	assert.Len(t, session.Search("  "), 3)
	assert.Empty(t, session.Search("шиномонтаж"))
}

func TestSearch_FavoritesFilterAppliesOnTop(t *testing.T) {
	session := sessionWithMasters(t, &fakeClient{})

	session.SetFavoritesFilter(true)

	result := session.Search("")
	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)

	// Поиск внутри избранного
	assert.Empty(t, session.Search("петров"))
}

func TestToggleFavorite_RequiresAuthAndKeepsState(t *testing.T) {
	client := &fakeClient{hasToken: false}
	session := sessionWithMasters(t, client)
	notifier := session.notifier.(*fakeNotifier)

	err := session.ToggleFavorite(context.Background(), 1)

	require.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, msgAuthRequiredForFavorite, notifier.last())
	// Локальное состояние не тронуто, запрос не уходил
	assert.False(t, session.Search("")[0].IsFavorite)
	assert.Equal(t, []string{"Masters"}, client.recorded())
}

func TestToggleFavorite_OptimisticFlip(t *testing.T) {
	client := &fakeClient{hasToken: true}
	session := sessionWithMasters(t, client)

	require.NoError(t, session.ToggleFavorite(context.Background(), 1))
	assert.True(t, session.Search("")[0].IsFavorite)
	assert.Contains(t, client.recorded(), "AddFavorite")

	require.NoError(t, session.ToggleFavorite(context.Background(), 2))
	assert.False(t, session.Search("")[1].IsFavorite)
	assert.Contains(t, client.recorded(), "RemoveFavorite")
}

func TestToggleFavorite_DoubleToggleReturnsToStart(t *testing.T) {
	client := &fakeClient{hasToken: true}
	session := sessionWithMasters(t, client)

	require.NoError(t, session.ToggleFavorite(context.Background(), 1))
	require.NoError(t, session.ToggleFavorite(context.Background(), 1))

	assert.False(t, session.Search("")[0].IsFavorite)
	calls := client.recorded()
	assert.Contains(t, calls, "AddFavorite")
	assert.Contains(t, calls, "RemoveFavorite")
}

func TestToggleFavorite_NoRollbackOnAPIError(t *testing.T) {
	client := &fakeClient{hasToken: true, favoriteErr: errors.New("connection refused")}
	session := sessionWithMasters(t, client)
	notifier := session.notifier.(*fakeNotifier)

	err := session.ToggleFavorite(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, msgFavoriteToggleFailed, notifier.last())
	// Флаг остаётся перевёрнутым, расхождение исправит перезагрузка списка
	assert.True(t, session.Search("")[0].IsFavorite)
}

func TestLoadMasters_ReplacesListAndReconcilesFavorites(t *testing.T) {
	client := &fakeClient{hasToken: true, favoriteErr: errors.New("connection refused")}
	session := sessionWithMasters(t, client)

	require.Error(t, session.ToggleFavorite(context.Background(), 1))
	require.True(t, session.Search("")[0].IsFavorite)

	// Сервер избранное не сохранил, перезагрузка возвращает правду
	client.favoriteErr = nil
	require.NoError(t, session.LoadMasters(context.Background()))
	assert.False(t, session.Search("")[0].IsFavorite)
}
