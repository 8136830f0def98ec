package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// DogHandler handles HTTP requests for dog profiles.
type DogHandler struct {
	service ports.DogService
}

func NewDogHandler(service ports.DogService) *DogHandler {
	return &DogHandler{service: service}
}

type emergencyContactRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type dogRequest struct {
	Name             string                   `json:"name"     validate:"required"`
	Breed            string                   `json:"breed"    validate:"required"`
	Age              int                      `json:"age"      validate:"gte=0,lte=30"`
	WeightKg         float64                  `json:"weight_kg" validate:"gt=0"`
	MedicalNotes     string                   `json:"medical_notes,omitempty"`
	BehavioralNotes  string                   `json:"behavioral_notes,omitempty"`
	VaccineRecords   string                   `json:"vaccine_records,omitempty"`
	Preferences      string                   `json:"preferences,omitempty"`
	EmergencyContact *emergencyContactRequest `json:"emergency_contact,omitempty"`
	PhotoURL         string                   `json:"photo_url,omitempty"`
}

type dogListResponse struct {
	Items []*domain.Dog `json:"items"`
	Total int           `json:"total"`
}

func (r *dogRequest) toInput() ports.DogInput {
	in := ports.DogInput{
		Name:            r.Name,
		Breed:           r.Breed,
		Age:             r.Age,
		WeightKg:        r.WeightKg,
		MedicalNotes:    r.MedicalNotes,
		BehavioralNotes: r.BehavioralNotes,
		VaccineRecords:  r.VaccineRecords,
		Preferences:     r.Preferences,
		PhotoURL:        r.PhotoURL,
	}
	if r.EmergencyContact != nil {
		in.EmergencyContact = &domain.EmergencyContact{
			Name:  r.EmergencyContact.Name,
			Phone: r.EmergencyContact.Phone,
		}
	}
	return in
}

// Create registers a dog under the authenticated parent.
//
// @Summary      Create a dog profile
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dogRequest  true  "Dog profile"
// @Success      201   {object}  domain.Dog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/dogs [post]
func (h *DogHandler) Create(c echo.Context) error {
	owner, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req dogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	dog, err := h.service.Create(c.Request().Context(), owner.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dog)
}

// List returns dog profiles visible to the viewer. Parents see only their
// own dogs; the optional q parameter filters by name or breed.
//
// @Summary      List dogs
// @Tags         dogs
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Name/breed search"
// @Success      200  {object}  dogListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dogs [get]
func (h *DogHandler) List(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	dogs, err := h.service.List(c.Request().Context(), viewer, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dogListResponse{Items: dogs, Total: len(dogs)})
}

// Get returns a single dog profile.
//
// @Summary      Get a dog
// @Tags         dogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Dog id"
// @Success      200  {object}  domain.Dog
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dogs/{id} [get]
func (h *DogHandler) Get(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	dog, err := h.service.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}

// Update replaces the writable fields of a dog profile.
//
// @Summary      Update a dog
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Dog id"
// @Param        body  body      dogRequest  true  "Dog profile"
// @Success      200   {object}  domain.Dog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/dogs/{id} [put]
func (h *DogHandler) Update(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req dogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	dog, err := h.service.Update(c.Request().Context(), viewer, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}

// Delete removes a dog profile.
//
// @Summary      Delete a dog
// @Tags         dogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Dog id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dogs/{id} [delete]
func (h *DogHandler) Delete(c echo.Context) error {
	viewer, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
