package handlers

import (
	"net/http"

	"backend/internal/domain"
	"backend/internal/http/middleware"
	"backend/internal/repository"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func addressService(c *gin.Context) services.AddressService {
	return services.AddressService{
		Repo:      repository.New(nil, repository.Addresses),
		RequestID: middleware.GetRequestID(c),
	}
}

// respondAddressError keeps the legacy surface: duplicate content is a
// 400 with a human-readable detail, not a 409.
func respondAddressError(c *gin.Context, err error) {
	switch {
	case domain.IsConflict(err):
		RespondError(c, http.StatusBadRequest, "Address already exists", nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "Address does not exist", nil)
	default:
		RespondDomainError(c, err)
	}
}

// POST /api/addresses
func CreateAddress(c *gin.Context) {
	var in services.AddressInput
	if !BindJSONOrError(c, &in) {
		return
	}

	msg, err := addressService(c).Create(middleware.CurrentUserID(c), in)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// PUT /api/addresses/:id
func UpdateAddress(c *gin.Context) {
	var in services.AddressInput
	if !BindJSONOrError(c, &in) {
		return
	}

	msg, err := addressService(c).Update(c.Param("id"), middleware.CurrentUserID(c), in)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// DELETE /api/addresses/:id
func DeleteAddress(c *gin.Context) {
	if err := addressService(c).Delete(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondAddressError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/addresses/:id
func GetAddress(c *gin.Context) {
	address, err := addressService(c).Get(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

// GET /api/addresses
func ListAddresses(c *gin.Context) {
	addresses, err := addressService(c).List(middleware.CurrentUserID(c))
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}
