package converter

import (
	"crisislink/internal/delivery/dto"
	"crisislink/internal/domain/entity"
)

// ContactToResponse converts an EmergencyContact entity to its full DTO
// (includes email; for the owner's dashboard, not the public view).
func ContactToResponse(contact *entity.EmergencyContact) *dto.ContactResponse {
	if contact == nil {
		return nil
	}

	return &dto.ContactResponse{
		ID:       contact.ID,
		Name:     contact.Name,
		Relation: contact.Relation,
		Phone:    contact.Phone,
		Email:    contact.Email,
		Priority: contact.Priority,
	}
}

// ContactsToResponses converts an ordered contact slice, preserving order.
func ContactsToResponses(contacts []entity.EmergencyContact) []dto.ContactResponse {
	responses := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, *ContactToResponse(&contacts[i]))
	}
	return responses
}
