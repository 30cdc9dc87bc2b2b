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
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ItemTypeService is the slice of the records API the item type
// screens depend on.
type ItemTypeService interface {
	GetLatest(ctx context.Context) ([]itemtype.ItemType, error)
	GetAll(ctx context.Context) ([]itemtype.ItemType, error)
	GetByID(ctx context.Context, id uint) (*itemtype.ItemType, error)
	Register(ctx context.Context, cmd services.RegisterItemTypeCommand) (uint, error)
}

type ItemTypeHandler struct {
	service ItemTypeService
	log     *logger.Logger
}

func NewItemTypeHandler(service ItemTypeService, log *logger.Logger) *ItemTypeHandler {
	return &ItemTypeHandler{service: service, log: log}
}

// Index renders the item type registration page. The optional id
// selects an item type for editing; 0 means no selection.
func (h *ItemTypeHandler) Index(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	lists, err := h.service.GetLatest(c.Request.Context())
	if err != nil {
		h.log.Errorf("itemtype list failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	locale := i18n.SelectLocale(c.GetHeader("Accept-Language"))
	c.HTML(http.StatusOK, "itemtype_register.html", gin.H{
		"title": i18n.T(locale, "Item Type Registration"),
		"lists": lists,
		"id":    id,
	})
}

// Render returns the serialized render definition for an item type.
// Id 0 and unknown ids answer a fixed empty-shape document.
func (h *ItemTypeHandler) Render(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if id > 0 {
		it, err := h.service.GetByID(c.Request.Context(), id)
		if err == nil && it != nil {
			c.JSON(http.StatusOK, it.Render)
			return
		}
	}

	c.JSON(http.StatusOK, emptyRenderDoc())
}

func emptyRenderDoc() gin.H {
	return gin.H{
		"table_row":     []any{},
		"table_row_map": gin.H{},
		"meta_list":     gin.H{},
		"schemaeditor": gin.H{
			"schema": gin.H{},
		},
	}
}

// Register upserts an item type and its mapping from the registration
// screen payload. The full body is persisted as the render document.
func (h *ItemTypeHandler) Register(c *gin.Context) {
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

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Debugf("itemtype register bad payload: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	cmd := services.RegisterItemTypeCommand{ID: id, Render: body}
	if trm, ok := body["table_row_map"].(map[string]any); ok {
		cmd.Name, _ = trm["name"].(string)
		cmd.Schema, _ = trm["schema"].(map[string]any)
		cmd.Mapping, _ = trm["mapping"].(map[string]any)
		if form, ok := trm["form"]; ok {
			if raw, err := json.Marshal(form); err == nil {
				cmd.Form = raw
			}
		}
	}

	newID, err := h.service.Register(c.Request.Context(), cmd)
	if err != nil {
		h.log.Errorf("itemtype register failed: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	h.log.Debugf("itemtype register: %d", newID)
	c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgSuccess)))
}

// pathID reads the optional :id path parameter. An absent parameter
// means 0; a non-numeric one does not match the route.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
