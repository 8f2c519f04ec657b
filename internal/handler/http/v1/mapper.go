package v1

import "github.com/Dharshan0025/neural-resq/internal/models"

// DTOToProfileModel преобразует DTO регистрации в доменную модель.
// Отсутствующий is_active трактуется как true.
func DTOToProfileModel(dto RegisterVolunteerRequest) models.VolunteerProfile {
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	return models.VolunteerProfile{
		UserID:         dto.UserID,
		IsActive:       isActive,
		Qualifications: dto.Qualifications,
		Availability:   dto.Availability,
	}
}

// ModelToVolunteerResponse преобразует профиль в DTO для ответа
func ModelToVolunteerResponse(model *models.VolunteerProfile) *VolunteerResponse {
	return &VolunteerResponse{
		UserID:         model.UserID,
		IsActive:       model.IsActive,
		Qualifications: model.Qualifications,
		Availability:   model.Availability,
		RegisteredAt:   model.RegisteredAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// DTOToLocationModel преобразует пинг геолокации в доменную модель
func DTOToLocationModel(dto UpdateLocationRequest) models.UserLocation {
	return models.UserLocation{
		UserID:     dto.UserID,
		Latitude:   dto.Latitude,
		Longitude:  dto.Longitude,
		Accuracy:   dto.Accuracy,
		ObservedAt: dto.ObservedAt,
	}
}

// ModelToLocationResponse преобразует позицию в DTO для ответа
func ModelToLocationResponse(model *models.UserLocation) *LocationResponse {
	return &LocationResponse{
		UserID:     model.UserID,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Accuracy:   model.Accuracy,
		ObservedAt: model.ObservedAt,
	}
}

// ModelToNearbyResponse преобразует результат поиска в DTO для ответа
func ModelToNearbyResponse(model *models.NearbyResult) *NearbyResponse {
	volunteers := make([]NearbyVolunteerResponse, len(model.Volunteers))
	for i, v := range model.Volunteers {
		volunteers[i] = NearbyVolunteerResponse{
			UserID:         v.UserID,
			DistanceKm:     v.DistanceKm,
			Qualifications: v.Qualifications,
			LastUpdated:    v.LastUpdated,
		}
	}
	return &NearbyResponse{
		Count:      model.Count,
		Volunteers: volunteers,
		CenterLat:  model.CenterLat,
		CenterLng:  model.CenterLng,
		RadiusKm:   model.RadiusKm,
	}
}

// ModelToDistressResponse преобразует результат детекции в DTO для ответа
func ModelToDistressResponse(model *models.DistressResult) *DistressResponse {
	details := make([]PredictionResponse, len(model.Details))
	for i, p := range model.Details {
		details[i] = PredictionResponse{Label: p.Label, Score: p.Score}
	}
	return &DistressResponse{
		IsDistress:  model.IsDistress,
		Confidence:  model.Confidence,
		Details:     details,
		EmergencyID: model.EmergencyID,
	}
}

// DTOToContactModel преобразует DTO контакта в доменную модель
func DTOToContactModel(dto AddContactRequest) models.EmergencyContact {
	return models.EmergencyContact{
		UserID:   dto.UserID,
		Name:     dto.Name,
		Phone:    dto.Phone,
		Relation: dto.Relation,
	}
}

// ModelToContactResponse преобразует контакт в DTO для ответа
func ModelToContactResponse(model *models.EmergencyContact) *ContactResponse {
	return &ContactResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Phone:     model.Phone,
		Relation:  model.Relation,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToContactResponses преобразует слайс контактов в слайс DTO
func ModelsToContactResponses(contacts []*models.EmergencyContact) []*ContactResponse {
	responses := make([]*ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ModelToContactResponse(contact)
	}
	return responses
}

// ModelToEmergencyResponse преобразует инцидент в DTO для ответа
func ModelToEmergencyResponse(model *models.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:             model.ID,
		UserID:         model.UserID,
		DetectionType:  model.DetectionType,
		IsConfirmed:    model.IsConfirmed,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		AdditionalInfo: model.AdditionalInfo,
		CreatedAt:      model.CreatedAt,
		ResolvedAt:     model.ResolvedAt,
	}
}

// ModelsToEmergencyResponses преобразует слайс инцидентов в слайс DTO
func ModelsToEmergencyResponses(emergencies []*models.Emergency) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(emergencies))
	for i, emergency := range emergencies {
		responses[i] = ModelToEmergencyResponse(emergency)
	}
	return responses
}

// ModelToAnalyticsResponse преобразует статистику в DTO для ответа
func ModelToAnalyticsResponse(model *models.EmergencyAnalytics) *AnalyticsResponse {
	return &AnalyticsResponse{
		TotalEmergencies:     model.TotalEmergencies,
		ConfirmedEmergencies: model.ConfirmedEmergencies,
		ByType:               model.ByType,
		TimePeriodDays:       model.TimePeriodDays,
	}
}
