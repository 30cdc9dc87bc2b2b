package handler

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeMappingService struct {
	mappings    map[uint]*itemtype.Mapping
	registered  map[uint]map[string]any
	registerErr error
}

func (f *fakeMappingService) GetByItemType(ctx context.Context, itemTypeID uint) (*itemtype.Mapping, error) {
	return f.mappings[itemTypeID], nil
}

func (f *fakeMappingService) Register(ctx context.Context, itemTypeID uint, mapping map[string]any) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	if f.registered == nil {
		f.registered = map[uint]map[string]any{}
	}
	f.registered[itemTypeID] = mapping
	return nil
}

var testTemplates = template.Must(template.New("").Parse(`
{{ define "error.html" }}error page: {{ .message }}{{ end }}
{{ define "mapping.html" }}mapping page id={{ .id }} doc={{ .mapping }}{{ end }}
`))

func newMappingRouter(itemTypes *fakeItemTypeService, mappings *fakeMappingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMappingHandler(itemTypes, mappings, logger.New(logger.DevelopmentMode))
	r := gin.New()
	r.SetHTMLTemplate(testTemplates)
	r.GET("/itemtypes/mapping", h.Index)
	r.GET("/itemtypes/mapping/:id", h.Index)
	r.POST("/itemtypes/mapping", h.Register)
	return r
}

func TestMappingIndexNoItemTypes(t *testing.T) {
	r := newMappingRouter(&fakeItemTypeService{}, &fakeMappingService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/mapping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "error page")
}

func TestMappingIndexRedirectsToFirst(t *testing.T) {
	itemTypes := &fakeItemTypeService{
		all:  []itemtype.ItemType{{ID: 4, Name: "Thesis"}, {ID: 9, Name: "Dataset"}},
		byID: map[uint]*itemtype.ItemType{4: {ID: 4}, 9: {ID: 9}},
	}
	r := newMappingRouter(itemTypes, &fakeMappingService{})

	// Unknown id redirects to the first available item type.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/mapping/77", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/itemtypes/mapping/4", rec.Header().Get("Location"))

	// The bare mapping page (id 0) behaves the same way.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/mapping", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/itemtypes/mapping/4", rec.Header().Get("Location"))
}

func TestMappingIndexRendersMapping(t *testing.T) {
	itemTypes := &fakeItemTypeService{
		all:  []itemtype.ItemType{{ID: 4, Name: "Thesis"}},
		byID: map[uint]*itemtype.ItemType{4: {ID: 4}},
	}
	mappings := &fakeMappingService{mappings: map[uint]*itemtype.Mapping{
		4: {ItemTypeID: 4, Mapping: datatypes.JSONMap{"title": "dc:title"}},
	}}
	r := newMappingRouter(itemTypes, mappings)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/mapping/4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "id=4")
	assert.Contains(t, rec.Body.String(), "dc:title")
}

func TestMappingRegisterStoresParsedDocument(t *testing.T) {
	mappings := &fakeMappingService{}
	r := newMappingRouter(&fakeItemTypeService{}, mappings)

	body := `{"item_type_id":5,"mapping":"{\"a\":1}"}`
	req := httptest.NewRequest(http.MethodPost, "/itemtypes/mapping", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Success"}`, rec.Body.String())
	require.Contains(t, mappings.registered, uint(5))
	assert.Equal(t, map[string]any{"a": float64(1)}, mappings.registered[5])
}

func TestMappingRegisterHeaderError(t *testing.T) {
	mappings := &fakeMappingService{}
	r := newMappingRouter(&fakeItemTypeService{}, mappings)

	req := httptest.NewRequest(http.MethodPost, "/itemtypes/mapping", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Header Error"}`, rec.Body.String())
	assert.Empty(t, mappings.registered)
}

func TestMappingRegisterUnparsableMapping(t *testing.T) {
	mappings := &fakeMappingService{}
	r := newMappingRouter(&fakeItemTypeService{}, mappings)

	body := `{"item_type_id":5,"mapping":"not json"}`
	req := httptest.NewRequest(http.MethodPost, "/itemtypes/mapping", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Fail"}`, rec.Body.String())
	assert.Empty(t, mappings.registered)
}
