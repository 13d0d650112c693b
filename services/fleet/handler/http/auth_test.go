package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/an-ant0/digital-waste-management/internal/pkg/models"
	fleetsvc "github.com/an-ant0/digital-waste-management/services/fleet"
	"github.com/an-ant0/digital-waste-management/services/fleet/mocks"
)

func TestAuthenticateHandler(t *testing.T) {
	e := echo.New()

	setup := func(t *testing.T) (*AuthHandler, *mocks.MockTruckUC, *gomock.Controller) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockTruckUC(ctrl)
		return NewAuthHandler(mockUC), mockUC, ctrl
	}

	t.Run("Success Returns Token", func(t *testing.T) {
		handler, mockUC, ctrl := setup(t)
		defer ctrl.Finish()

		req, rec := newJSONRequest(http.MethodPost, "/trucks/auth", `{"truck_id":"KTM-01","access_code":"secret"}`)
		c := e.NewContext(req, rec)

		mockUC.EXPECT().
			Authenticate(gomock.Any(), gomock.Any()).
			Return(&models.TruckAuthResponse{Token: "signed.jwt.token", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		err := handler.Authenticate(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	})

	t.Run("Missing Fields Returns 400", func(t *testing.T) {
		handler, mockUC, ctrl := setup(t)
		defer ctrl.Finish()

		req, rec := newJSONRequest(http.MethodPost, "/trucks/auth", `{"truck_id":"KTM-01"}`)
		c := e.NewContext(req, rec)

		mockUC.EXPECT().
			Authenticate(gomock.Any(), gomock.Any()).
			Return(nil, fleetsvc.ErrMissingFields)

		err := handler.Authenticate(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Wrong Code Returns 401", func(t *testing.T) {
		handler, mockUC, ctrl := setup(t)
		defer ctrl.Finish()

		req, rec := newJSONRequest(http.MethodPost, "/trucks/auth", `{"truck_id":"KTM-01","access_code":"wrong"}`)
		c := e.NewContext(req, rec)

		mockUC.EXPECT().
			Authenticate(gomock.Any(), gomock.Any()).
			Return(nil, fleetsvc.ErrInvalidAccessCode)

		err := handler.Authenticate(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown Truck Also Returns 401", func(t *testing.T) {
		handler, mockUC, ctrl := setup(t)
		defer ctrl.Finish()

		req, rec := newJSONRequest(http.MethodPost, "/trucks/auth", `{"truck_id":"KTM-99","access_code":"secret"}`)
		c := e.NewContext(req, rec)

		mockUC.EXPECT().
			Authenticate(gomock.Any(), gomock.Any()).
			Return(nil, fleetsvc.ErrTruckNotFound)

		err := handler.Authenticate(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
