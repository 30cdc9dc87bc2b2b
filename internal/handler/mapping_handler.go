package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/i18n"
	"github.com/RCOSDP/weko-itemtype/internal/transport/httpdto"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MappingService interface {
	GetByItemType(ctx context.Context, itemTypeID uint) (*itemtype.Mapping, error)
	Register(ctx context.Context, itemTypeID uint, mapping map[string]any) error
}

type MappingHandler struct {
	itemTypes ItemTypeService
	mappings  MappingService
	log       *logger.Logger
}

func NewMappingHandler(itemTypes ItemTypeService, mappings MappingService, log *logger.Logger) *MappingHandler {
	return &MappingHandler{itemTypes: itemTypes, mappings: mappings, log: log}
}

// Index renders the mapping page for an item type. Without any item
// types it renders the error page; an unresolved id redirects to the
// first item type's mapping page.
func (h *MappingHandler) Index(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	locale := i18n.SelectLocale(c.GetHeader("Accept-Language"))

	lists, err := h.itemTypes.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("itemtype list failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}
	if len(lists) == 0 {
		c.HTML(http.StatusOK, "error.html", gin.H{
			"message": i18n.T(locale, "No item types found."),
		})
		return
	}

	if _, err := h.itemTypes.GetByID(c.Request.Context(), id); err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/itemtypes/mapping/%d", lists[0].ID))
		return
	}

	m, err := h.mappings.GetByItemType(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("mapping get failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	var doc any
	if m != nil {
		doc = m.Mapping
	}
	pretty, _ := json.MarshalIndent(doc, "", "    ")
	h.log.Debugf("mapping for itemtype %d: %s", id, pretty)

	c.HTML(http.StatusOK, "mapping.html", gin.H{
		"title":   i18n.T(locale, "Item Type Mapping"),
		"lists":   lists,
		"mapping": string(pretty),
		"id":      id,
	})
}

// Register stores a mapping document. The mapping field arrives as a
// JSON-encoded string and is parsed before storage.
func (h *MappingHandler) Register(c *gin.Context) {
	locale := i18n.SelectLocale(c.GetHeader("Accept-Language"))

	if c.GetHeader("Content-Type") != "application/json" {
		h.log.Debugf("unexpected content type: %s", c.GetHeader("Content-Type"))
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgHeaderError)))
		return
	}

	var req httpdto.MappingRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debugf("mapping register bad payload: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(req.Mapping), &parsed); err != nil {
		h.log.Debugf("mapping register unparsable mapping: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	if err := h.mappings.Register(c.Request.Context(), req.ItemTypeID, parsed); err != nil {
		h.log.Errorf("mapping register failed: %v", err)
		c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgFail)))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewMessageResponse(i18n.T(locale, httpdto.MsgSuccess)))
}
