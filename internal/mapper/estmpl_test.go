package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitterHou/search-platform/internal/model"
)

func TestIndexTemplate_RoundTrip(t *testing.T) {
	tmpl := &model.IndexTemplate{
		Name:  "goods",
		Host:  "http://es:9200",
		Index: "goods_v1",
		Type:  "Goods",
		Mapping: map[string]interface{}{
			"properties": map[string]interface{}{"title": map[string]interface{}{"type": "text"}},
		},
	}

	view := NewIndexTemplateView(tmpl)
	assert.Equal(t, "", view.ID)
	assert.JSONEq(t, `{"properties": {"title": {"type": "text"}}}`, view.MappingJSONStr)

	back, err := IndexTemplateFromView(view)
	require.NoError(t, err)
	assert.Equal(t, tmpl, back)
}

func TestIndexTemplateFromView_EmptyMapping(t *testing.T) {
	back, err := IndexTemplateFromView(&model.IndexTemplateView{Name: "goods"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "goods"}`, encode(t, back))
}

func TestIndexTemplateFromView_InvalidMapping(t *testing.T) {
	_, err := IndexTemplateFromView(&model.IndexTemplateView{Name: "goods", MappingJSONStr: "{oops}"})

	assert.ErrorIs(t, err, ErrInvalidJSON)
	assert.Contains(t, err.Error(), "mapping")
}
