package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/i18n"
	"github.com/RCOSDP/weko-itemtype/internal/services"
	"github.com/RCOSDP/weko-itemtype/internal/transport/httpdto"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PropertyService interface {
	GetAll(ctx context.Context) ([]itemtype.Property, error)
	GetByID(ctx context.Context, id uint) (*itemtype.Property, error)
	Create(ctx context.Context, cmd services.CreatePropertyCommand) error
}

type PropertyHandler struct {
	service PropertyService
	log     *logger.Logger
}

func NewPropertyHandler(service PropertyService, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{service: service, log: log}
}

// Index renders the property definition page.
func (h *PropertyHandler) Index(c *gin.Context) {
	lists, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("property list failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	locale := i18n.SelectLocale(c.GetHeader("Accept-Language"))
	c.HTML(http.StatusOK, "property.html", gin.H{
		"title": i18n.T(locale, "Property Definitions"),
		"lists": lists,
	})
}

// List returns all property definitions keyed by id.
func (h *PropertyHandler) List(c *gin.Context) {
	props, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("property list failed: %v", err)
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	lists := make(map[string]httpdto.PropertyFields, len(props))
	for _, p := range props {
		lists[strconv.FormatUint(uint64(p.ID), 10)] = httpdto.PropertyFields{
			Name:   p.Name,
			Schema: p.Schema,
			Form:   json.RawMessage(p.Form),
			Forms:  json.RawMessage(p.Forms),
		}
	}

	c.JSON(http.StatusOK, lists)
}

// Get returns a single property definition.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err != registry_errors.ErrNotFound {
			h.log.Errorf("property get failed: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, httpdto.PropertyDetail{
		ID:     p.ID,
		Name:   p.Name,
		Schema: p.Schema,
		Form:   json.RawMessage(p.Form),
		Forms:  json.RawMessage(p.Forms),
	})
}

// Create upserts a property definition. A zero id creates a new one.
func (h *PropertyHandler) Create(c *gin.Context) {
	locale := i18n.SelectLocale(c.GetHeader("Accept-Language"))

	if c.GetHeader("Content-Type") != "application/json" {
		h.log.Debugf("unexpected content type: %s", c.GetHeader("Content-Type"))
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgHeaderError)))
		return
	}

	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var req httpdto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debugf("property create bad payload: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	err := h.service.Create(c.Request.Context(), services.CreatePropertyCommand{
		ID:         id,
		Name:       req.Name,
		Schema:     req.Schema,
		FormSingle: req.Form1,
		FormArray:  req.Form2,
	})
	if err != nil {
		h.log.Errorf("property create failed: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgSuccess)))
}
