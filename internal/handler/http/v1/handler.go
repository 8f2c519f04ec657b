package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/service"
)

type Handler struct {
	volunteers service.VolunteerService
	locations  service.LocationService
	matching   service.MatchingService
	dispatch   service.DispatchService
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(volunteers service.VolunteerService, locations service.LocationService, matching service.MatchingService, dispatch service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		volunteers: volunteers,
		locations:  locations,
		matching:   matching,
		dispatch:   dispatch,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// errStatus переводит вид доменной ошибки в HTTP-статус
func errStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidCoordinate), errors.Is(err, apperr.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNotRegistered), errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// @Summary Register a volunteer
// @Description Register the user as a volunteer. A second registration for the same user fails.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param volunteer body RegisterVolunteerRequest true "Volunteer registration request"
// @Success 201 {object} RegisterVolunteerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer/register [post]
func (h *Handler) registerVolunteer(c *gin.Context) {
	var input RegisterVolunteerRequest
	log := h.logger.WithField("method", "registerVolunteer")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.volunteers.Register(c.Request.Context(), DTOToProfileModel(input))
	if err != nil {
		log.WithError(err).Warn("Failed to register volunteer in service")
		c.JSON(errStatus(err), gin.H{"error": "failed to register volunteer"})
		return
	}
	c.JSON(http.StatusCreated, RegisterVolunteerResponse{VolunteerID: profile.UserID})
}

// @Summary Set volunteer active flag
// @Description Activate or deactivate a registered volunteer. Deactivation removes the volunteer from nearby search immediately.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param request body SetActiveRequest true "Active flag request"
// @Success 200 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Volunteer not registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer/active [put]
func (h *Handler) setVolunteerActive(c *gin.Context) {
	var input SetActiveRequest
	log := h.logger.WithField("method", "setVolunteerActive")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.volunteers.SetActive(c.Request.Context(), input.UserID, *input.IsActive)
	if err != nil {
		log.WithError(err).Warn("Failed to update active flag in service")
		c.JSON(errStatus(err), gin.H{"error": "failed to update active flag"})
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(profile))
}

// @Summary Get volunteer profile
// @Description Get a volunteer profile by user ID.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} VolunteerResponse
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Router /volunteer/{id} [get]
func (h *Handler) getVolunteer(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getVolunteer").WithField("user_id", userID)

	profile, err := h.volunteers.Get(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get volunteer from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "volunteer not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(profile))
}

// @Summary Update user location
// @Description Apply a location ping. Stale pings (older observed_at than stored) are ignored and the stored location is returned.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or out-of-range coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input UpdateLocationRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.locations.UpdateLocation(c.Request.Context(), DTOToLocationModel(input))
	if err != nil {
		log.WithError(err).Warn("Failed to update location in service")
		c.JSON(errStatus(err), gin.H{"error": "failed to update location"})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(loc))
}

// @Summary Get user location
// @Description Get the last known location of a user.
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} LocationResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Router /location/user/{id} [get]
func (h *Handler) getUserLocation(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getUserLocation").WithField("user_id", userID)

	loc, err := h.locations.GetLocation(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get location from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(loc))
}

// @Summary Find nearby volunteers
// @Description Find active volunteers within a radius of the given point, nearest first.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius_km query number false "Search radius in km" default(5.0)
// @Param max_results query int false "Result cap"
// @Success 200 {object} NearbyResponse
// @Failure 400 {object} map[string]string "Malformed center or non-positive radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer/nearby [get]
func (h *Handler) queryNearby(c *gin.Context) {
	log := h.logger.WithField("method", "queryNearby")

	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}

	radiusKm := h.cfg.DefaultRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
			return
		}
	}
	maxResults := 0
	if raw := c.Query("max_results"); raw != "" {
		maxResults, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_results"})
			return
		}
	}

	result, err := h.matching.QueryNearby(c.Request.Context(), lat, lon, radiusKm, maxResults)
	if err != nil {
		log.WithError(err).Warn("Failed to query nearby volunteers in service")
		c.JSON(errStatus(err), gin.H{"error": "failed to query nearby volunteers"})
		return
	}
	c.JSON(http.StatusOK, ModelToNearbyResponse(result))
}

// @Summary Trigger SOS
// @Description Create a manual emergency, notify emergency contacts by SMS and queue a push for nearby volunteers.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param sos body TriggerSOSRequest true "SOS trigger request"
// @Success 201 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/trigger [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	var input TriggerSOSRequest
	log := h.logger.WithField("method", "triggerSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emergency, sent, err := h.dispatch.TriggerSOS(c.Request.Context(), input.UserID, input.Latitude, input.Longitude, input.AdditionalInfo)
	if err != nil {
		log.WithError(err).Error("Failed to trigger SOS in service")
		c.JSON(errStatus(err), gin.H{"error": "failed to trigger SOS"})
		return
	}
	c.JSON(http.StatusCreated, SOSResponse{EmergencyID: emergency.ID, NotificationsSent: sent})
}

// @Summary Resolve an emergency
// @Description Mark an emergency as resolved. The transition is terminal: a second resolve fails.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param id path string true "Emergency ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 404 {object} map[string]string "Open emergency not found"
// @Router /sos/{id}/resolve [put]
func (h *Handler) resolveEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "resolveEmergency").WithField("emergency_id", id)

	if err := h.dispatch.ResolveEmergency(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to resolve emergency in service")
		c.JSON(errStatus(err), gin.H{"error": "failed to resolve emergency"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Detect distress in audio
// @Description Run the uploaded audio through the distress classifier and record an audio emergency.
// @Tags Emergencies
// @Accept mpfd
// @Produce json
// @Param user_id formData string true "User ID"
// @Param audio_file formData file true "Audio recording"
// @Success 200 {object} DistressResponse
// @Failure 400 {object} map[string]string "Missing user_id or audio file"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /distress/predict [post]
func (h *Handler) predictDistress(c *gin.Context) {
	log := h.logger.WithField("method", "predictDistress")

	userID := c.PostForm("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		log.WithError(err).Warn("Missing audio file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio_file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded audio")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded audio")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	result, err := h.dispatch.PredictDistress(c.Request.Context(), userID, audio)
	if err != nil {
		log.WithError(err).Error("Failed to run distress detection in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDistressResponse(result))
}

// @Summary Get emergency history
// @Description Get the user's emergencies for the last N days, newest first. Requires API key.
// @Tags History
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Param days query int false "Window in days" default(30)
// @Success 200 {array} EmergencyResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /history/emergencies [get]
func (h *Handler) getHistory(c *gin.Context) {
	log := h.logger.WithField("method", "getHistory")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	emergencies, err := h.dispatch.GetHistory(c.Request.Context(), userID, days)
	if err != nil {
		log.WithError(err).Error("Failed to get history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(emergencies))
}

// @Summary Get emergency analytics
// @Description Get aggregated emergency statistics for the user over the last N days. Requires API key.
// @Tags History
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} AnalyticsResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /history/analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	log := h.logger.WithField("method", "getAnalytics")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	analytics, err := h.dispatch.GetAnalytics(c.Request.Context(), userID, days)
	if err != nil {
		log.WithError(err).Error("Failed to get analytics from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToAnalyticsResponse(analytics))
}

// @Summary Add an emergency contact
// @Description Add an emergency contact for the user. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param contact body AddContactRequest true "Contact request"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [post]
func (h *Handler) addContact(c *gin.Context) {
	var input AddContactRequest
	log := h.logger.WithField("method", "addContact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := DTOToContactModel(input)
	if err := h.dispatch.AddContact(c.Request.Context(), &contact); err != nil {
		log.WithError(err).Error("Failed to add contact in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToContactResponse(&contact))
}

// @Summary List emergency contacts
// @Description List the user's emergency contacts. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Success 200 {array} ContactResponse
// @Failure 400 {object} map[string]string "Missing user_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listContacts")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	contacts, err := h.dispatch.ListContacts(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
