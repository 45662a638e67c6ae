package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/pkg/apiclient"
)

func TestEstimatePrice_RoundsToWholeKZT(t *testing.T) {
	client := &fakeClient{
		priceResult: &apiclient.Price{
			ServiceID:   3,
			ServiceName: "Замена масла",
			CarBrand:    "Toyota",
			CarModel:    "Camry",
			CarYear:     2012,
			CarAge:      14,
			CarType:     "Standard",
			BasePrice:   12500,
			FinalPrice:  15000.4,
			MinPrice:    5000,
			MaxPrice:    50000.6,
			PriceDetails: []apiclient.PriceDetail{
				{Description: "Базовая стоимость услуги", Amount: 12500},
				{Description: "Надбавка за возраст автомобиля (старше 10 лет)", Amount: 2500.4},
			},
		},
	}
	session, _, _ := newTestSession(client)
	session.SelectService(3)
	session.SelectCar(5)

	est, err := session.EstimatePrice(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Замена масла", est.ServiceName)
	assert.Equal(t, "Toyota Camry (2012)", est.CarTitle)
	assert.Equal(t, 14, est.CarAge)
	assert.Equal(t, "Standard", est.CarType)
	assert.Equal(t, "12500 KZT", est.BasePrice)
	assert.Equal(t, "15000 KZT", est.FinalPrice)
	assert.Equal(t, "5000 KZT", est.MinPrice)
	assert.Equal(t, "50001 KZT", est.MaxPrice)
	require.Len(t, est.Details, 2)
	assert.Equal(t, "2500 KZT", est.Details[1].Amount)
}

func TestEstimatePrice_WithoutServiceNoRequest(t *testing.T) {
	client := &fakeClient{}
	session, notifier, _ := newTestSession(client)
	session.SelectCar(5)

	est, err := session.EstimatePrice(context.Background())

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Nil(t, est)
	assert.Equal(t, msgServiceNotSelected, notifier.last())
	assert.Empty(t, client.recorded())
}

func TestEstimatePrice_WithoutCarNoRequest(t *testing.T) {
	client := &fakeClient{}
	session, notifier, _ := newTestSession(client)
	session.SelectService(3)

	_, err := session.EstimatePrice(context.Background())

	require.Error(t, err)
	assert.Equal(t, msgCarNotSelected, notifier.last())
	assert.Empty(t, client.recorded())
}

func TestEstimatePrice_APIErrorNoPartialResult(t *testing.T) {
	client := &fakeClient{priceErr: errors.New("connection refused")}
	session, notifier, _ := newTestSession(client)
	session.SelectService(3)
	session.SelectCar(5)

	est, err := session.EstimatePrice(context.Background())

	require.Error(t, err)
	assert.Nil(t, est)
	assert.Equal(t, msgEstimateFailed, notifier.last())
}
