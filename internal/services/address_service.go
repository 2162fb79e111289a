package services

import (
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repository"
	"backend/internal/utils"
)

// AddressInput carries the writable fields of a shipping address.
type AddressInput struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
}

// AddressService wraps address CRUD. Every lookup is scoped by the
// owning user; one user can never touch another user's address.
type AddressService struct {
	Repo      repository.Repository[models.ShippingAddress]
	RequestID string
}

const (
	addressCreatedMsg = "Address created successfully"
	addressUpdatedMsg = "Address updated successfully"
)

// Create is idempotent by content: an identical (street, city, state)
// for the same user conflicts instead of duplicating.
func (s AddressService) Create(userID string, in AddressInput) (string, error) {
	existing, err := s.Repo.GetFirstByAttr(map[string]any{
		"street":  in.Street,
		"city":    in.City,
		"state":   in.State,
		"user_id": userID,
	})
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ConflictError{Resource: "address", Msg: "address already exists"}
	}

	if _, err := s.Repo.Create(map[string]any{
		"street":  in.Street,
		"city":    in.City,
		"state":   in.State,
		"user_id": userID,
	}); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "address", "create", "user_id="+userID)
	return addressCreatedMsg, nil
}

// Update overwrites all submitted fields. A no-op update (submitted
// values equal to stored values) is rejected so callers only send
// genuine changes.
func (s AddressService) Update(id, userID string, in AddressInput) (string, error) {
	current, err := s.owned(id, userID)
	if err != nil {
		return "", err
	}
	if current.SameContent(in.Street, in.City, in.State) {
		return "", domain.ConflictError{Resource: "address", Msg: "address already exists"}
	}

	updated, err := s.Repo.Update(id, map[string]any{
		"street": in.Street,
		"city":   in.City,
		"state":  in.State,
	})
	if err != nil {
		return "", err
	}
	if updated == nil {
		return "", domain.NotFoundError{Resource: "address"}
	}
	utils.LogEvent(s.RequestID, "address", "update", "id="+id)
	return addressUpdatedMsg, nil
}

func (s AddressService) Delete(id, userID string) error {
	if _, err := s.owned(id, userID); err != nil {
		return err
	}
	if _, err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "address", "delete", "id="+id)
	return nil
}

func (s AddressService) Get(id, userID string) (*models.ShippingAddress, error) {
	return s.owned(id, userID)
}

// List returns all addresses owned by the user, unfiltered and
// unpaginated.
func (s AddressService) List(userID string) ([]models.ShippingAddress, error) {
	return s.Repo.GetByAttr(map[string]any{"user_id": userID})
}

// owned resolves an address only when it exists and belongs to userID.
func (s AddressService) owned(id, userID string) (*models.ShippingAddress, error) {
	address, err := s.Repo.GetFirstByAttr(map[string]any{"id": id, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.NotFoundError{Resource: "address"}
	}
	return address, nil
}
