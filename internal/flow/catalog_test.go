package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

func TestLoadCategories_DeduplicatesByName(t *testing.T) {
	client := &fakeClient{
		categories: []apiclient.Category{
			{ID: 1, Name: "Диагностика"},
			{ID: 2, Name: "Кузовной ремонт"},
			{ID: 3, Name: "Диагностика"},
		},
	}
	session, _, _ := newTestSession(client)

	err := session.LoadCategories(context.Background())
	require.NoError(t, err)

	categories := session.Categories()
	require.Len(t, categories, 2)
	// Побеждает первое вхождение, порядок сохраняется
	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, int64(2), categories[1].ID)
}

func TestLoadCategories_ErrorClearsList(t *testing.T) {
	client := &fakeClient{
		categories: []apiclient.Category{{ID: 1, Name: "Диагностика"}},
	}
	session, notifier, _ := newTestSession(client)

	require.NoError(t, session.LoadCategories(context.Background()))
	require.Len(t, session.Categories(), 1)

	client.categoriesErr = errors.New("connection refused")
	err := session.LoadCategories(context.Background())
	require.Error(t, err)

	// Устаревший список не показываем, выбирать не из чего
	assert.Empty(t, session.Categories())
	assert.Equal(t, msgCategoriesLoadFailed, notifier.last())
}

func TestLoadMasters_ErrorClearsList(t *testing.T) {
	client := &fakeClient{
		masters: []apiclient.Master{{ID: 1, Name: "Алексей Петров", Email: "petrov@beep.kz"}},
	}
	session, notifier, _ := newTestSession(client)

	require.NoError(t, session.LoadMasters(context.Background()))
	require.Len(t, session.Search(""), 1)

	client.mastersErr = errors.New("connection refused")
	require.Error(t, session.LoadMasters(context.Background()))

	assert.Empty(t, session.Search(""))
	assert.Equal(t, msgMastersLoadFailed, notifier.last())
}

func TestLoadCars_DeduplicatesByBrandModelYear(t *testing.T) {
	client := &fakeClient{
		cars: []apiclient.Car{
			{ID: 1, Brand: "Toyota", Model: "Camry", Year: 2015},
			{ID: 2, Brand: "Toyota", Model: "Camry", Year: 2020},
			{ID: 3, Brand: "Toyota", Model: "Camry", Year: 2015},
		},
	}
	session, _, _ := newTestSession(client)

	require.NoError(t, session.LoadCars(context.Background()))

	cars := session.Cars()
	require.Len(t, cars, 2)
	assert.Equal(t, int64(1), cars[0].ID)
	assert.Equal(t, int64(2), cars[1].ID)
}

func TestLoadMasters_DeduplicatesByNameAndEmail(t *testing.T) {
	client := &fakeClient{
		masters: []apiclient.Master{
			{ID: 1, Name: "Алексей Петров", Email: "petrov@beep.kz"},
			{ID: 2, Name: "Алексей Петров", Email: "petrov2@beep.kz"},
			{ID: 3, Name: "Алексей Петров", Email: "petrov@beep.kz"},
		},
	}
	session, _, _ := newTestSession(client)

	require.NoError(t, session.LoadMasters(context.Background()))

	// Тёзки с разными email остаются, полный дубликат схлопывается
	masters := session.Search("")
	require.Len(t, masters, 2)
	assert.Equal(t, int64(1), masters[0].ID)
	assert.Equal(t, int64(2), masters[1].ID)
}
