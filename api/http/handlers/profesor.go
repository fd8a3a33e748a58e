package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/edutechinnovations/proyect/api/http/presenter"
	"github.com/edutechinnovations/proyect/pkg/profesor"
)

// ProfesorHandler serves the teacher record resource.
type ProfesorHandler struct {
	uc  profesor.UseCase
	log logrus.FieldLogger
}

func NewProfesorHandler(uc profesor.UseCase, log logrus.FieldLogger) *ProfesorHandler {
	return &ProfesorHandler{uc: uc, log: log}
}

// List returns every teacher record.
// @Summary List teachers
// @Tags    profesor
// @Produce json
// @Success 200 {array}  profesorResponse
// @Success 204 "no records"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profesor [get]
func (h *ProfesorHandler) List(c *fiber.Ctx) error {
	ps, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	if len(ps) == 0 {
		return c.Status(http.StatusNoContent).Send(nil)
	}
	return presenter.JSON(c, http.StatusOK, toResponses(ps))
}

// Create stores a new teacher record.
// @Summary Create teacher
// @Tags    profesor
// @Accept  json
// @Produce json
// @Param   input body profesorRequest true "teacher record"
// @Success 201 {object} profesorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profesor [post]
func (h *ProfesorHandler) Create(c *fiber.Ctx) error {
	var req profesorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Save(c.UserContext(), req.toEntity(), req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toResponse(p))
}

// GetByID returns one teacher record.
// @Summary Get teacher by id
// @Tags    profesor
// @Produce json
// @Param   id path int true "teacher id"
// @Success 200 {object} profesorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profesor/{id} [get]
func (h *ProfesorHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	p, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toResponse(p))
}

// Update overwrites a teacher record. The id in the path always wins over
// id_profesor in the body; an empty contrasena_profesor keeps the password.
// @Summary Update teacher
// @Tags    profesor
// @Accept  json
// @Produce json
// @Param   id    path int             true "teacher id"
// @Param   input body profesorRequest true "teacher record"
// @Success 200 {object} profesorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profesor/{id} [put]
func (h *ProfesorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req profesorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Update(c.UserContext(), id, req.toEntity(), req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toResponse(p))
}

func (h *ProfesorHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profesor.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "profesor not found")
	case errors.Is(err, profesor.ErrDuplicateEmail):
		return presenter.Error(c, http.StatusConflict, "correo_profesor already in use")
	case errors.Is(err, profesor.ErrPasswordTooLong):
		return presenter.Error(c, http.StatusBadRequest, "contrasena_profesor exceeds 72 bytes")
	default:
		rid, _ := c.Locals("requestId").(string)
		h.log.WithError(err).WithField("request_id", rid).Error("profesor request failed")
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
