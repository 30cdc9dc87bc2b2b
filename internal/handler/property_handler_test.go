package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/services"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakePropertyService struct {
	props     []itemtype.Property
	created   []services.CreatePropertyCommand
	createErr error
}

func (f *fakePropertyService) GetAll(ctx context.Context) ([]itemtype.Property, error) {
	return f.props, nil
}

func (f *fakePropertyService) GetByID(ctx context.Context, id uint) (*itemtype.Property, error) {
	for i := range f.props {
		if f.props[i].ID == id {
			return &f.props[i], nil
		}
	}
	return nil, registry_errors.ErrNotFound
}

func (f *fakePropertyService) Create(ctx context.Context, cmd services.CreatePropertyCommand) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, cmd)
	return nil
}

func newPropertyRouter(svc *fakePropertyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPropertyHandler(svc, logger.New(logger.DevelopmentMode))
	r := gin.New()
	r.GET("/itemtypes/property/list", h.List)
	r.GET("/itemtypes/property/:id", h.Get)
	r.POST("/itemtypes/property", h.Create)
	r.POST("/itemtypes/property/:id", h.Create)
	return r
}

func sampleProperties() []itemtype.Property {
	return []itemtype.Property{
		{
			ID:     1,
			Name:   "Title",
			Schema: datatypes.JSONMap{"type": "string"},
			Form:   datatypes.JSON(`{"key":"title"}`),
			Forms:  datatypes.JSON(`{"key":"title[]"}`),
		},
		{
			ID:     2,
			Name:   "Creator",
			Schema: datatypes.JSONMap{"type": "string"},
			Form:   datatypes.JSON(`{"key":"creator"}`),
			Forms:  datatypes.JSON(`{"key":"creator[]"}`),
		},
	}
}

func TestPropertyListShape(t *testing.T) {
	r := newPropertyRouter(&fakePropertyService{props: sampleProperties()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/property/list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Len(t, got, 2)
	for _, id := range []string{"1", "2"} {
		fields, ok := got[id]
		require.True(t, ok, "expected key %s", id)
		assert.ElementsMatch(t, []string{"name", "schema", "form", "forms"}, keys(fields))
	}
	assert.Equal(t, "Title", got["1"]["name"])
	assert.Equal(t, map[string]any{"key": "creator"}, got["2"]["form"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestPropertyGet(t *testing.T) {
	r := newPropertyRouter(&fakePropertyService{props: sampleProperties()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/property/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "Title", got["name"])
	assert.ElementsMatch(t, []string{"id", "name", "schema", "form", "forms"}, keys(got))
}

func TestPropertyGetMissing(t *testing.T) {
	r := newPropertyRouter(&fakePropertyService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/itemtypes/property/42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestPropertyCreateHeaderError(t *testing.T) {
	svc := &fakePropertyService{}
	r := newPropertyRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/itemtypes/property", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Header Error"}`, rec.Body.String())
	assert.Empty(t, svc.created)
}

func TestPropertyCreate(t *testing.T) {
	svc := &fakePropertyService{}
	r := newPropertyRouter(svc)

	body := `{"name":"Subject","schema":{"type":"string"},"form1":{"key":"subject"},"form2":{"key":"subject[]"}}`
	req := httptest.NewRequest(http.MethodPost, "/itemtypes/property", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Success"}`, rec.Body.String())

	require.Len(t, svc.created, 1)
	cmd := svc.created[0]
	assert.Equal(t, uint(0), cmd.ID)
	assert.Equal(t, "Subject", cmd.Name)
	assert.JSONEq(t, `{"key":"subject"}`, string(cmd.FormSingle))
	assert.JSONEq(t, `{"key":"subject[]"}`, string(cmd.FormArray))
}

func TestPropertyCreateFailure(t *testing.T) {
	svc := &fakePropertyService{createErr: registry_errors.ErrInvalidInput}
	r := newPropertyRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/itemtypes/property/2", bytes.NewBufferString(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Fail"}`, rec.Body.String())
}
