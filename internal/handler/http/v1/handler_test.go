package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/models"
	"github.com/Dharshan0025/neural-resq/internal/service/mocks"
)

type testMocks struct {
	volunteers *mocks.MockVolunteerService
	locations  *mocks.MockLocationService
	matching   *mocks.MockMatchingService
	dispatch   *mocks.MockDispatchService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		volunteers: mocks.NewMockVolunteerService(ctrl),
		locations:  mocks.NewMockLocationService(ctrl),
		matching:   mocks.NewMockMatchingService(ctrl),
		dispatch:   mocks.NewMockDispatchService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:          []string{"test-api-key"},
		DefaultRadiusKm:  5.0,
		MaxNearbyResults: 50,
	}

	handler := NewHandler(m.volunteers, m.locations, m.matching, m.dispatch, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterVolunteer_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterVolunteerRequest{
		UserID:         "vol-1",
		Qualifications: []string{"cpr"},
	}
	expectedProfile := &models.VolunteerProfile{
		UserID:   "vol-1",
		IsActive: true,
	}

	m.volunteers.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx interface{}, profile models.VolunteerProfile) (*models.VolunteerProfile, error) {
			// is_active по умолчанию true, если поле не передано
			assert.True(t, profile.IsActive)
			return expectedProfile, nil
		}).Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/volunteer/register", bytes.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp RegisterVolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "vol-1", resp.VolunteerID)
}

func TestRegisterVolunteer_Duplicate_Conflict(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegisterVolunteerRequest{UserID: "vol-1"}

	m.volunteers.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrAlreadyRegistered)).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/volunteer/register", bytes.NewReader(body))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterVolunteer_MissingUserID(t *testing.T) {
	_, _, router := newTestHandler(t)

	body, _ := json.Marshal(map[string]any{"qualifications": []string{"cpr"}})
	w := makeRequest(router, http.MethodPost, "/api/v1/volunteer/register", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetVolunteerActive_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	active := false
	reqBody := SetActiveRequest{UserID: "vol-1", IsActive: &active}

	m.volunteers.EXPECT().
		SetActive(gomock.Any(), "vol-1", false).
		Return(&models.VolunteerProfile{UserID: "vol-1", IsActive: false}, nil).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPut, "/api/v1/volunteer/active", bytes.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp VolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

func TestSetVolunteerActive_MissingFlag(t *testing.T) {
	// is_active обязателен, чтобы отличать false от пропуска поля
	_, _, router := newTestHandler(t)

	body, _ := json.Marshal(map[string]any{"user_id": "vol-1"})
	w := makeRequest(router, http.MethodPut, "/api/v1/volunteer/active", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetVolunteerActive_NotRegistered(t *testing.T) {
	_, m, router := newTestHandler(t)
	active := true
	reqBody := SetActiveRequest{UserID: "ghost", IsActive: &active}

	m.volunteers.EXPECT().
		SetActive(gomock.Any(), "ghost", true).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrNotRegistered)).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPut, "/api/v1/volunteer/active", bytes.NewReader(body))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVolunteer_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	now := time.Now().UTC().Truncate(time.Second)

	m.volunteers.EXPECT().
		Get(gomock.Any(), "vol-1").
		Return(&models.VolunteerProfile{
			UserID:         "vol-1",
			IsActive:       true,
			Qualifications: []string{"cpr"},
			RegisteredAt:   now,
			UpdatedAt:      now,
		}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/vol-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp VolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "vol-1", resp.UserID)
	assert.Equal(t, []string{"cpr"}, resp.Qualifications)
}

func TestGetVolunteer_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.volunteers.EXPECT().
		Get(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("service: %w", apperr.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	observedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	reqBody := UpdateLocationRequest{
		UserID:     "user-1",
		Latitude:   55.75,
		Longitude:  37.61,
		Accuracy:   10,
		ObservedAt: observedAt,
	}

	m.locations.EXPECT().
		UpdateLocation(gomock.Any(), gomock.Any()).
		Return(&models.UserLocation{
			UserID: "user-1", Latitude: 55.75, Longitude: 37.61, Accuracy: 10, ObservedAt: observedAt,
		}, nil).Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/location/update", bytes.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 55.75, resp.Latitude)
}

func TestUpdateLocation_OutOfRangeCoordinates(t *testing.T) {
	// Валидация диапазона срабатывает до обращения к сервису
	_, _, router := newTestHandler(t)
	reqBody := UpdateLocationRequest{
		UserID:     "user-1",
		Latitude:   95,
		Longitude:  0,
		ObservedAt: time.Now(),
	}

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/location/update", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLocation_InvalidBody(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/update", bytes.NewReader([]byte("{не json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserLocation_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.locations.EXPECT().
		GetLocation(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("service: %w", apperr.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/location/user/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryNearby_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.matching.EXPECT().
		QueryNearby(gomock.Any(), 55.75, 37.61, 2.5, 10).
		Return(&models.NearbyResult{
			Count: 1,
			Volunteers: []models.NearbyVolunteer{
				{UserID: "vol-1", DistanceKm: 0.4, Qualifications: []string{"cpr"}},
			},
			CenterLat: 55.75,
			CenterLng: 37.61,
			RadiusKm:  2.5,
		}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/nearby?latitude=55.75&longitude=37.61&radius_km=2.5&max_results=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp NearbyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "vol-1", resp.Volunteers[0].UserID)
}

func TestQueryNearby_DefaultRadius(t *testing.T) {
	// Без radius_km используется радиус по умолчанию из конфигурации
	_, m, router := newTestHandler(t)

	m.matching.EXPECT().
		QueryNearby(gomock.Any(), 55.75, 37.61, 5.0, 0).
		Return(&models.NearbyResult{RadiusKm: 5.0, Volunteers: []models.NearbyVolunteer{}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/nearby?latitude=55.75&longitude=37.61", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueryNearby_MalformedLatitude(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/nearby?latitude=abc&longitude=37.61", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryNearby_MalformedMaxResults(t *testing.T) {
	// Некорректный max_results отклоняется, а не подменяется дефолтом
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/nearby?latitude=55.75&longitude=37.61&max_results=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid max_results")
}

func TestQueryNearby_InvalidQuery_BadRequest(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.matching.EXPECT().
		QueryNearby(gomock.Any(), 95.0, 37.61, 5.0, 0).
		Return(nil, fmt.Errorf("service: %w", apperr.ErrInvalidQuery)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/volunteer/nearby?latitude=95&longitude=37.61", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriggerSOS_Created(t *testing.T) {
	_, m, router := newTestHandler(t)
	emergencyID := uuid.New()
	reqBody := TriggerSOSRequest{
		UserID:         "user-1",
		Latitude:       55.75,
		Longitude:      37.61,
		AdditionalInfo: "help",
	}

	m.dispatch.EXPECT().
		TriggerSOS(gomock.Any(), "user-1", 55.75, 37.61, "help").
		Return(&models.Emergency{ID: emergencyID, UserID: "user-1"}, 2, nil).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/trigger", bytes.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SOSResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, emergencyID, resp.EmergencyID)
	assert.Equal(t, 2, resp.NotificationsSent)
}

func TestTriggerSOS_ServiceFailure(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := TriggerSOSRequest{UserID: "user-1", Latitude: 55.75, Longitude: 37.61}

	m.dispatch.EXPECT().
		TriggerSOS(gomock.Any(), "user-1", 55.75, 37.61, "").
		Return(nil, 0, fmt.Errorf("бд недоступна")).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/trigger", bytes.NewReader(body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResolveEmergency_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.dispatch.EXPECT().ResolveEmergency(gomock.Any(), id).Return(nil).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/sos/"+id.String()+"/resolve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveEmergency_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPut, "/api/v1/sos/not-a-uuid/resolve", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveEmergency_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	id := uuid.New()

	m.dispatch.EXPECT().
		ResolveEmergency(gomock.Any(), id).
		Return(fmt.Errorf("service: %w", apperr.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/sos/"+id.String()+"/resolve", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPredictDistress_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	emergencyID := uuid.New()

	m.dispatch.EXPECT().
		PredictDistress(gomock.Any(), "user-1", []byte("wav-data")).
		Return(&models.DistressResult{
			IsDistress:  true,
			Confidence:  0.92,
			Details:     []models.Prediction{{Label: "distress", Score: 0.92}},
			EmergencyID: emergencyID,
		}, nil).Times(1)

	// Сборка multipart-запроса с аудиофайлом
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", "user-1"))
	fw, err := mw.CreateFormFile("audio_file", "sample.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte("wav-data"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/distress/predict", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DistressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsDistress)
	assert.Equal(t, 0.92, resp.Confidence)
}

func TestPredictDistress_MissingUserID(t *testing.T) {
	_, _, router := newTestHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/distress/predict", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictDistress_MissingAudioFile(t *testing.T) {
	_, _, router := newTestHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", "user-1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/distress/predict", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistory_RequiresAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/history/emergencies?user_id=user-1", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHistory_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	emergencies := []*models.Emergency{
		{ID: uuid.New(), UserID: "user-1", DetectionType: models.DetectionManual, IsConfirmed: true},
	}

	m.dispatch.EXPECT().
		GetHistory(gomock.Any(), "user-1", 7).
		Return(emergencies, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/history/emergencies?user_id=user-1&days=7", nil,
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "manual", resp[0].DetectionType)
}

func TestGetHistory_MissingUserID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/history/emergencies", nil,
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAnalytics_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.dispatch.EXPECT().
		GetAnalytics(gomock.Any(), "user-1", 30).
		Return(&models.EmergencyAnalytics{
			TotalEmergencies:     4,
			ConfirmedEmergencies: 2,
			ByType:               map[string]int{"manual": 3, "audio": 1},
			TimePeriodDays:       30,
		}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/history/analytics?user_id=user-1", nil,
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalEmergencies)
	assert.Equal(t, 3, resp.ByType["manual"])
}

func TestAddContact_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := AddContactRequest{
		UserID: "user-1",
		Name:   "Мама",
		Phone:  "+70000000001",
	}

	m.dispatch.EXPECT().
		AddContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx interface{}, contact *models.EmergencyContact) error {
			contact.ID = 7
			contact.CreatedAt = time.Now()
			return nil
		}).Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/contacts", bytes.NewReader(body),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestAddContact_BearerToken(t *testing.T) {
	// API-ключ принимается и в заголовке Authorization
	_, m, router := newTestHandler(t)
	reqBody := AddContactRequest{UserID: "user-1", Name: "Мама", Phone: "+70000000001"}

	m.dispatch.EXPECT().AddContact(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/contacts", bytes.NewReader(body),
		map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListContacts_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	contacts := []*models.EmergencyContact{
		{ID: 1, UserID: "user-1", Name: "Мама", Phone: "+70000000001"},
	}

	m.dispatch.EXPECT().ListContacts(gomock.Any(), "user-1").Return(contacts, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/contacts?user_id=user-1", nil,
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Мама", resp[0].Name)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
